package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// Artisan mirrors the 'artisans' table. PasswordHash is never serialized;
// public responses are built from explicit DTOs in the handler layer.
type Artisan struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	CraftType    string
	City         string
	State        string
	Country      string
	Bio          string
	Story        sql.NullString
	Experience   uint32
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ArtisanProfilePatch holds the updatable profile fields. Nil pointers mean
// "leave unchanged". Email and password are deliberately absent: neither is
// updatable through the profile path.
type ArtisanProfilePatch struct {
	Name       *string
	Phone      *string
	CraftType  *string
	City       *string
	State      *string
	Country    *string
	Bio        *string
	Story      *string
	Experience *uint32
}

type ArtisanRepo struct{ DB *sql.DB }

func NewArtisanRepo(db *sql.DB) *ArtisanRepo { return &ArtisanRepo{DB: db} }

const artisanCols = "id,name,email,password_hash,phone,craft_type,city,state,country,bio,story,experience,created_at,updated_at"

func scanArtisan(row *sql.Row) (Artisan, error) {
	var a Artisan
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Phone, &a.CraftType,
		&a.City, &a.State, &a.Country, &a.Bio, &a.Story, &a.Experience, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// Create inserts an artisan and returns its ID. The email is stored
// normalized; uniqueness is enforced by the index, not a prior lookup, so
// two concurrent registrations for the same address cannot both succeed.
func (r *ArtisanRepo) Create(ctx context.Context, a *Artisan) (uint64, error) {
	a.Email = NormalizeEmail(a.Email)
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO artisans (name, email, password_hash, phone, craft_type, city, state, country, bio, experience)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		a.Name, a.Email, a.PasswordHash, a.Phone, a.CraftType, a.City, a.State, a.Country, a.Bio, a.Experience)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	a.ID = uint64(id)
	return a.ID, nil
}

// GetByEmail fetches an artisan by normalized email.
func (r *ArtisanRepo) GetByEmail(ctx context.Context, email string) (Artisan, error) {
	email = NormalizeEmail(email)
	return scanArtisan(r.DB.QueryRowContext(ctx,
		"SELECT "+artisanCols+" FROM artisans WHERE email=? LIMIT 1", email))
}

// GetByID fetches an artisan by id.
func (r *ArtisanRepo) GetByID(ctx context.Context, id uint64) (Artisan, error) {
	a, err := scanArtisan(r.DB.QueryRowContext(ctx,
		"SELECT "+artisanCols+" FROM artisans WHERE id=? LIMIT 1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return Artisan{}, ErrNotFound
	}
	return a, err
}

// UpdateProfile applies a patch to the artisan's own row. The statement is
// scoped by id only because the id comes from the verified token, never
// from the request. Returns ErrNotFound when the row no longer exists.
func (r *ArtisanRepo) UpdateProfile(ctx context.Context, id uint64, p ArtisanProfilePatch) error {
	set := []string{}
	args := []any{}
	add := func(col string, v any) {
		set = append(set, col+"=?")
		args = append(args, v)
	}
	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Phone != nil {
		add("phone", *p.Phone)
	}
	if p.CraftType != nil {
		add("craft_type", *p.CraftType)
	}
	if p.City != nil {
		add("city", *p.City)
	}
	if p.State != nil {
		add("state", *p.State)
	}
	if p.Country != nil {
		add("country", *p.Country)
	}
	if p.Bio != nil {
		add("bio", *p.Bio)
	}
	if p.Story != nil {
		add("story", *p.Story)
	}
	if p.Experience != nil {
		add("experience", *p.Experience)
	}
	if len(set) == 0 {
		return nil
	}
	args = append(args, id)
	res, err := r.DB.ExecContext(ctx,
		"UPDATE artisans SET "+strings.Join(set, ", ")+" WHERE id=?", args...)
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

// NormalizeEmail lower-cases and trims an address so lookups and the unique
// index agree on a single representation.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
