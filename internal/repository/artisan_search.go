package repository

import (
	"context"
	"strings"
)

// ArtisanSearchQuery defines filters & pagination for the public artisan
// directory.
type ArtisanSearchQuery struct {
	CraftType string
	Location  string
	Search    string
	Page      int
	PageSize  int
}

// PublicArtisanRow is the sanitized directory row. Email, phone and the
// password hash never appear on public paths.
type PublicArtisanRow struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	CraftType  string `json:"craft_type"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	Bio        string `json:"bio,omitempty"`
	Experience uint32 `json:"experience"`
}

// buildArtisanFilter mirrors buildProductFilter for the directory: unset
// parameters contribute no clause, set ones are ANDed together.
func buildArtisanFilter(q ArtisanSearchQuery) (where []string, args []any, limit, offset int) {
	if q.CraftType != "" && q.CraftType != "all" {
		where = append(where, "craft_type = ?")
		args = append(args, q.CraftType)
	}
	if q.Location != "" {
		where = append(where, "LOWER(city) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Location)+"%")
	}
	if q.Search != "" {
		needle := "%" + strings.ToLower(q.Search) + "%"
		where = append(where, "(LOWER(name) LIKE ? OR LOWER(bio) LIKE ? OR LOWER(story) LIKE ?)")
		args = append(args, needle, needle, needle)
	}
	limit, offset = pageWindow(q.Page, q.PageSize)
	return where, args, limit, offset
}

// Search lists artisans for the public directory, newest first.
func (r *ArtisanRepo) Search(ctx context.Context, q ArtisanSearchQuery) ([]PublicArtisanRow, int64, error) {
	where, args, limit, offset := buildArtisanFilter(q)
	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM artisans WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, craft_type, city, state, country, bio, experience
		 FROM artisans WHERE `+cond+` ORDER BY created_at DESC LIMIT ? OFFSET ?`,
		args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]PublicArtisanRow, 0, limit)
	for rows.Next() {
		var a PublicArtisanRow
		if err := rows.Scan(&a.ID, &a.Name, &a.CraftType, &a.City, &a.State,
			&a.Country, &a.Bio, &a.Experience); err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
