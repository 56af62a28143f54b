package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArtisanRepoWithMock(t *testing.T) (*ArtisanRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewArtisanRepo(db), mock
}

func TestArtisanCreateNormalizesEmail(t *testing.T) {
	repo, mock := newArtisanRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO artisans`).
		WithArgs("Meera", "meera@example.com", "hash", "", "pottery", "Jaipur", "RJ", "India", "", 5).
		WillReturnResult(sqlmock.NewResult(42, 1))

	a := Artisan{
		Name: "Meera", Email: "  Meera@Example.COM ", PasswordHash: "hash",
		CraftType: "pottery", City: "Jaipur", State: "RJ", Country: "India",
		Experience: 5,
	}
	id, err := repo.Create(context.Background(), &a)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
	assert.Equal(t, "meera@example.com", a.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtisanCreateDuplicateEmail(t *testing.T) {
	repo, mock := newArtisanRepoWithMock(t)

	mock.ExpectExec(`INSERT INTO artisans`).
		WillReturnError(errors.New("Error 1062: Duplicate entry 'meera@example.com' for key 'uq_artisans_email'"))

	a := Artisan{Name: "Meera", Email: "meera@example.com", PasswordHash: "hash"}
	_, err := repo.Create(context.Background(), &a)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestArtisanUpdateProfileMissingRow(t *testing.T) {
	repo, mock := newArtisanRepoWithMock(t)

	bio := "new bio"
	mock.ExpectExec(`UPDATE artisans SET bio=\? WHERE id=\?`).
		WithArgs("new bio", 42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProfile(context.Background(), 42, ArtisanProfilePatch{Bio: &bio})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtisanUpdateProfileEmptyPatchIsNoop(t *testing.T) {
	repo, _ := newArtisanRepoWithMock(t)
	require.NoError(t, repo.UpdateProfile(context.Background(), 42, ArtisanProfilePatch{}))
}

func TestArtisanGetByIDNotFound(t *testing.T) {
	repo, mock := newArtisanRepoWithMock(t)

	mock.ExpectQuery(`SELECT .+ FROM artisans WHERE id=\?`).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArtisanGetByEmailScansRow(t *testing.T) {
	repo, mock := newArtisanRepoWithMock(t)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "name", "email", "password_hash", "phone", "craft_type", "city",
		"state", "country", "bio", "story", "experience", "created_at", "updated_at",
	}).AddRow(42, "Meera", "meera@example.com", "hash", "", "pottery", "Jaipur",
		"RJ", "India", "", nil, 5, now, now)
	mock.ExpectQuery(`SELECT .+ FROM artisans WHERE email=\?`).
		WithArgs("meera@example.com").
		WillReturnRows(rows)

	a, err := repo.GetByEmail(context.Background(), "MEERA@example.com")
	require.NoError(t, err)
	assert.Equal(t, uint64(42), a.ID)
	assert.False(t, a.Story.Valid)
}
