// Package repository contains data access logic separated from HTTP handlers.
// This file defines the Product model and repository methods. A Product is
// owned by exactly one Artisan; the owner column is written once at insert
// time and every mutation is scoped to it in a single statement, so a
// non-owner can never update or delete a row no matter how requests
// interleave.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Product statuses. Only active products are visible on public paths.
const (
	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusSold     = "sold"
	StatusInactive = "inactive"
)

// Product mirrors the 'products' table.
type Product struct {
	ID               uint64    `json:"id"`
	ArtisanID        uint64    `json:"artisan_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description,omitempty"`
	Category         string    `json:"category"`
	PriceCents       uint64    `json:"price_cents"`
	Currency         string    `json:"currency"`
	Quantity         uint32    `json:"quantity"`
	SKU              string    `json:"sku"`
	Materials        string    `json:"materials,omitempty"`
	Tags             string    `json:"tags,omitempty"`
	Status           string    `json:"status"`
	Featured         bool      `json:"featured"`
	Views            uint64    `json:"views"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ProductPatch holds the updatable product fields. Nil means unchanged.
// ArtisanID is absent: ownership is immutable after creation.
type ProductPatch struct {
	Title            *string
	Description      *string
	ShortDescription *string
	Category         *string
	PriceCents       *uint64
	Currency         *string
	Quantity         *uint32
	Materials        *string
	Tags             *string
	Status           *string
	Featured         *bool
}

// ErrNoFields is returned when a patch contains nothing to update.
var ErrNoFields = errors.New("no fields to update")

type ProductRepo struct {
	db *sql.DB
}

func NewProductRepo(db *sql.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

const productCols = `id, artisan_id, title, description, short_description, category,
	price_cents, currency, quantity, sku, materials, tags, status, featured, views,
	created_at, updated_at`

func scanProduct(scan func(dest ...any) error) (Product, error) {
	var p Product
	err := scan(&p.ID, &p.ArtisanID, &p.Title, &p.Description, &p.ShortDescription,
		&p.Category, &p.PriceCents, &p.Currency, &p.Quantity, &p.SKU, &p.Materials,
		&p.Tags, &p.Status, &p.Featured, &p.Views, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// Create inserts a new product for the given artisan. The ArtisanID on the
// model must already be the verified subject; status always starts as draft
// and a SKU is assigned when the caller did not supply one. After the
// insert a follow-up SELECT populates defaults and timestamps so callers
// receive a fully populated record.
func (r *ProductRepo) Create(ctx context.Context, p *Product) error {
	if p.SKU == "" {
		p.SKU = uuid.NewString()
	}
	if p.Currency == "" {
		p.Currency = "INR"
	}
	if p.Quantity == 0 {
		p.Quantity = 1
	}
	const qInsert = `INSERT INTO products
		(artisan_id, title, description, short_description, category, price_cents,
		 currency, quantity, sku, materials, tags, status)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,'draft')`
	res, err := r.db.ExecContext(ctx, qInsert,
		p.ArtisanID, p.Title, p.Description, p.ShortDescription, p.Category,
		p.PriceCents, p.Currency, p.Quantity, p.SKU, p.Materials, p.Tags)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)

	got, err := scanProduct(r.db.QueryRowContext(ctx,
		"SELECT "+productCols+" FROM products WHERE id = ?", p.ID).Scan)
	if err != nil {
		return err
	}
	*p = got
	return nil
}

// GetActiveByID fetches a product by id for the public detail page. Rows
// with any other status behave as absent.
func (r *ProductRepo) GetActiveByID(ctx context.Context, id uint64) (Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx,
		"SELECT "+productCols+" FROM products WHERE id = ? AND status = 'active'", id).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	return p, err
}

// GetByIDAndOwner fetches a product only if it belongs to the given artisan.
func (r *ProductRepo) GetByIDAndOwner(ctx context.Context, id, artisanID uint64) (Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx,
		"SELECT "+productCols+" FROM products WHERE id = ? AND artisan_id = ?", id, artisanID).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	return p, err
}

// IncrementViews bumps the view counter in place. The arithmetic happens in
// the statement, not in application code, so concurrent detail fetches
// cannot lose updates.
func (r *ProductRepo) IncrementViews(ctx context.Context, id uint64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE products SET views = views + 1 WHERE id = ?", id)
	return err
}

// Update applies a patch to a product in a single statement scoped by both
// id and owner. A row owned by someone else matches nothing and reports
// ErrNotFound, exactly like a missing row. The connection sets
// clientFoundRows, so a patch that changes no values still counts as a
// match.
func (r *ProductRepo) Update(ctx context.Context, id, artisanID uint64, patch ProductPatch) (Product, error) {
	set := []string{}
	args := []any{}
	add := func(col string, v any) {
		set = append(set, col+"=?")
		args = append(args, v)
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.ShortDescription != nil {
		add("short_description", *patch.ShortDescription)
	}
	if patch.Category != nil {
		add("category", *patch.Category)
	}
	if patch.PriceCents != nil {
		add("price_cents", *patch.PriceCents)
	}
	if patch.Currency != nil {
		add("currency", *patch.Currency)
	}
	if patch.Quantity != nil {
		add("quantity", *patch.Quantity)
	}
	if patch.Materials != nil {
		add("materials", *patch.Materials)
	}
	if patch.Tags != nil {
		add("tags", *patch.Tags)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Featured != nil {
		add("featured", *patch.Featured)
	}
	if len(set) == 0 {
		return Product{}, ErrNoFields
	}
	args = append(args, id, artisanID)
	res, err := r.db.ExecContext(ctx,
		"UPDATE products SET "+strings.Join(set, ", ")+" WHERE id = ? AND artisan_id = ?", args...)
	if err != nil {
		return Product{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Product{}, err
	}
	if n == 0 {
		return Product{}, ErrNotFound
	}
	return r.GetByIDAndOwner(ctx, id, artisanID)
}

// Delete removes a product in a single owner-scoped statement.
func (r *ProductRepo) Delete(ctx context.Context, id, artisanID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM products WHERE id = ? AND artisan_id = ?", id, artisanID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByOwner returns the artisan's own products, optionally filtered by
// status, newest first, with bounded pagination.
func (r *ProductRepo) ListByOwner(ctx context.Context, artisanID uint64, status string, page, pageSize int) ([]Product, int64, error) {
	cond := "artisan_id = ?"
	args := []any{artisanID}
	if status != "" {
		cond += " AND status = ?"
		args = append(args, status)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM products WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit, offset := pageWindow(page, pageSize)
	args = append(args, limit, offset)
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+productCols+" FROM products WHERE "+cond+" ORDER BY created_at DESC LIMIT ? OFFSET ?",
		args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]Product, 0, limit)
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
