package repository

import (
	"context"
	"database/sql"
	"strings"
)

// LikeRepo manages the product_likes membership set. The like count is
// always derived from the set; there is no separate counter to drift out
// of sync.
type LikeRepo struct{ DB *sql.DB }

func NewLikeRepo(db *sql.DB) *LikeRepo { return &LikeRepo{DB: db} }

// Toggle flips the (product, artisan) membership and reports the new state
// plus the derived count. The membership check lives inside the INSERT
// itself: the primary key either lets the row in or rejects it with a
// duplicate-key error (MySQL 1062), so two concurrent toggles cannot
// double-insert. A duplicate means the artisan already liked the product
// and this toggle removes the like instead.
//
// A like against a nonexistent product trips the foreign key (MySQL 1452)
// and is reported as ErrNotFound. The INSERT must not use IGNORE: MySQL
// downgrades the FK violation to a warning under IGNORE and the statement
// succeeds with zero rows, which would make a missing product look like an
// existing membership.
func (r *LikeRepo) Toggle(ctx context.Context, productID, artisanID uint64) (liked bool, count int64, err error) {
	_, err = r.DB.ExecContext(ctx,
		"INSERT INTO product_likes (product_id, artisan_id) VALUES (?,?)",
		productID, artisanID)
	switch {
	case err == nil:
		liked = true
	case strings.Contains(err.Error(), "1062"):
		// Already a member: this toggle removes the like.
		if _, err := r.DB.ExecContext(ctx,
			"DELETE FROM product_likes WHERE product_id = ? AND artisan_id = ?",
			productID, artisanID); err != nil {
			return false, 0, err
		}
	case strings.Contains(err.Error(), "1452"):
		return false, 0, ErrNotFound
	default:
		return false, 0, err
	}

	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM product_likes WHERE product_id = ?", productID).Scan(&count); err != nil {
		return liked, 0, err
	}
	return liked, count, nil
}

// Count returns the number of likes for a product.
func (r *LikeRepo) Count(ctx context.Context, productID uint64) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM product_likes WHERE product_id = ?", productID).Scan(&n)
	return n, err
}
