package repository

import (
	"context"
	"strings"
	"time"
)

// Pagination bounds for catalogue queries. Limits are capped so a caller
// cannot request an unbounded result set.
const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// ProductSearchQuery defines filters & pagination for the public catalogue.
// Price bounds are pointers: nil means "no bound", which must produce no
// clause at all rather than a zero-valued comparison.
type ProductSearchQuery struct {
	Category      string
	ArtisanID     uint64
	MinPriceCents *uint64
	MaxPriceCents *uint64
	Location      string
	Search        string
	Sort          string
	Page          int
	PageSize      int
}

// PublicProductRow is the sanitized catalogue row returned to guests.
type PublicProductRow struct {
	ID               uint64    `json:"id"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"short_description,omitempty"`
	Category         string    `json:"category"`
	PriceCents       uint64    `json:"price_cents"`
	Price            float64   `json:"price"`
	Currency         string    `json:"currency"`
	ArtisanID        uint64    `json:"artisan_id"`
	ArtisanName      string    `json:"artisan_name"`
	ArtisanCraft     string    `json:"artisan_craft"`
	ArtisanCity      string    `json:"artisan_city"`
	Featured         bool      `json:"featured"`
	Views            uint64    `json:"views"`
	CreatedAt        time.Time `json:"created_at"`
}

// pageWindow converts 1-indexed pagination into a bounded LIMIT/OFFSET pair.
func pageWindow(page, size int) (limit, offset int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if page < 1 {
		page = 1
	}
	return size, (page - 1) * size
}

// buildProductFilter translates the query into WHERE fragments, bound args,
// an ORDER BY clause and a pagination window. It is a pure function over its
// input so the catalogue contract can be tested without a database.
//
// The status clause is unconditional: the public catalogue never exposes
// draft, sold or inactive products no matter what filters the caller sends.
// Every optional filter is ANDed in only when set.
func buildProductFilter(q ProductSearchQuery) (where []string, args []any, orderBy string, limit, offset int) {
	where = append(where, "p.status = 'active'")

	if q.Category != "" && q.Category != "all" {
		where = append(where, "p.category = ?")
		args = append(args, q.Category)
	}
	if q.ArtisanID != 0 {
		where = append(where, "p.artisan_id = ?")
		args = append(args, q.ArtisanID)
	}
	if q.MinPriceCents != nil {
		where = append(where, "p.price_cents >= ?")
		args = append(args, *q.MinPriceCents)
	}
	if q.MaxPriceCents != nil {
		where = append(where, "p.price_cents <= ?")
		args = append(args, *q.MaxPriceCents)
	}
	if q.Location != "" {
		where = append(where, "LOWER(a.city) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Location)+"%")
	}
	if q.Search != "" {
		needle := "%" + strings.ToLower(q.Search) + "%"
		where = append(where, "(LOWER(p.title) LIKE ? OR LOWER(p.description) LIKE ? OR LOWER(p.tags) LIKE ?)")
		args = append(args, needle, needle, needle)
	}

	// Unknown sort values fall back to newest instead of failing the request.
	switch q.Sort {
	case "price-low":
		orderBy = "p.price_cents ASC"
	case "price-high":
		orderBy = "p.price_cents DESC"
	case "popular":
		orderBy = "p.views DESC"
	default:
		orderBy = "p.created_at DESC"
	}

	limit, offset = pageWindow(q.Page, q.PageSize)
	return where, args, orderBy, limit, offset
}

// Search runs the public catalogue query and returns the matching page of
// rows plus the total count for the same filter.
func (r *ProductRepo) Search(ctx context.Context, q ProductSearchQuery) ([]PublicProductRow, int64, error) {
	where, args, orderBy, limit, offset := buildProductFilter(q)
	cond := strings.Join(where, " AND ")

	var total int64
	countSQL := `SELECT COUNT(*)
		FROM products p
		JOIN artisans a ON a.id = p.artisan_id
		WHERE ` + cond
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	dataSQL := `SELECT
			p.id,
			p.title,
			p.short_description,
			p.category,
			p.price_cents,
			p.currency,
			p.artisan_id,
			a.name  AS artisan_name,
			a.craft_type AS artisan_craft,
			a.city  AS artisan_city,
			p.featured,
			p.views,
			p.created_at
		FROM products p
		JOIN artisans a ON a.id = p.artisan_id
		WHERE ` + cond + `
		ORDER BY ` + orderBy + `
		LIMIT ? OFFSET ?`

	argsData := append(append([]any{}, args...), limit, offset)

	rows, err := r.db.QueryContext(ctx, dataSQL, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]PublicProductRow, 0, limit)
	for rows.Next() {
		var d PublicProductRow
		if err := rows.Scan(
			&d.ID,
			&d.Title,
			&d.ShortDescription,
			&d.Category,
			&d.PriceCents,
			&d.Currency,
			&d.ArtisanID,
			&d.ArtisanName,
			&d.ArtisanCraft,
			&d.ArtisanCity,
			&d.Featured,
			&d.Views,
			&d.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		d.Price = float64(d.PriceCents) / 100.0
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
