package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint64) *uint64 { return &v }

func TestBuildProductFilterDefaults(t *testing.T) {
	where, args, orderBy, limit, offset := buildProductFilter(ProductSearchQuery{})

	// Only the mandatory status clause, no bound args.
	assert.Equal(t, []string{"p.status = 'active'"}, where)
	assert.Empty(t, args)
	assert.Equal(t, "p.created_at DESC", orderBy)
	assert.Equal(t, DefaultPageSize, limit)
	assert.Equal(t, 0, offset)
}

func TestBuildProductFilterPriceBoundsIndependent(t *testing.T) {
	where, args, _, _, _ := buildProductFilter(ProductSearchQuery{
		MinPriceCents: uintPtr(1500),
	})
	assert.Contains(t, where, "p.price_cents >= ?")
	assert.NotContains(t, where, "p.price_cents <= ?")
	assert.Equal(t, []any{uint64(1500)}, args)

	where, args, _, _, _ = buildProductFilter(ProductSearchQuery{
		MaxPriceCents: uintPtr(9900),
	})
	assert.Contains(t, where, "p.price_cents <= ?")
	assert.NotContains(t, where, "p.price_cents >= ?")
	assert.Equal(t, []any{uint64(9900)}, args)
}

func TestBuildProductFilterZeroMinIsABound(t *testing.T) {
	// A present-but-zero bound is still a bound; only nil means unset.
	where, args, _, _, _ := buildProductFilter(ProductSearchQuery{
		MinPriceCents: uintPtr(0),
	})
	assert.Contains(t, where, "p.price_cents >= ?")
	assert.Equal(t, []any{uint64(0)}, args)
}

func TestBuildProductFilterTextSearch(t *testing.T) {
	where, args, _, _, _ := buildProductFilter(ProductSearchQuery{Search: "Blue Vase"})

	assert.Contains(t, where,
		"(LOWER(p.title) LIKE ? OR LOWER(p.description) LIKE ? OR LOWER(p.tags) LIKE ?)")
	assert.Equal(t, []any{"%blue vase%", "%blue vase%", "%blue vase%"}, args)
}

func TestBuildProductFilterAllClausesANDed(t *testing.T) {
	where, args, _, _, _ := buildProductFilter(ProductSearchQuery{
		Category:      "pottery",
		ArtisanID:     9,
		MinPriceCents: uintPtr(100),
		MaxPriceCents: uintPtr(5000),
		Location:      "Jaipur",
		Search:        "bowl",
	})

	assert.Len(t, where, 7) // status + six filters
	assert.Equal(t, "p.status = 'active'", where[0])
	assert.Len(t, args, 7) // search contributes three args
}

func TestBuildProductFilterCategoryAllIsUnset(t *testing.T) {
	where, args, _, _, _ := buildProductFilter(ProductSearchQuery{Category: "all"})
	assert.Equal(t, []string{"p.status = 'active'"}, where)
	assert.Empty(t, args)
}

func TestBuildProductFilterSort(t *testing.T) {
	cases := map[string]string{
		"newest":     "p.created_at DESC",
		"price-low":  "p.price_cents ASC",
		"price-high": "p.price_cents DESC",
		"popular":    "p.views DESC",
		"":           "p.created_at DESC",
		"bogus":      "p.created_at DESC",
	}
	for sort, want := range cases {
		_, _, orderBy, _, _ := buildProductFilter(ProductSearchQuery{Sort: sort})
		assert.Equal(t, want, orderBy, "sort=%q", sort)
	}
}

func TestPageWindow(t *testing.T) {
	cases := []struct {
		page, size    int
		limit, offset int
	}{
		{1, 12, 12, 0},
		{3, 12, 12, 24},
		{0, 12, 12, 0},   // page clamps to 1
		{-5, 20, 20, 0},  // negative page clamps to 1
		{2, 0, 12, 12},   // zero size falls back to default
		{1, 500, 100, 0}, // oversized limit is capped
		{2, 500, 100, 100},
	}
	for _, c := range cases {
		limit, offset := pageWindow(c.page, c.size)
		assert.Equal(t, c.limit, limit, "page=%d size=%d", c.page, c.size)
		assert.Equal(t, c.offset, offset, "page=%d size=%d", c.page, c.size)
	}
}

func TestBuildArtisanFilter(t *testing.T) {
	where, args, limit, offset := buildArtisanFilter(ArtisanSearchQuery{})
	assert.Empty(t, where)
	assert.Empty(t, args)
	assert.Equal(t, DefaultPageSize, limit)
	assert.Equal(t, 0, offset)

	where, args, _, _ = buildArtisanFilter(ArtisanSearchQuery{
		CraftType: "pottery",
		Location:  "Delhi",
		Search:    "Meera",
	})
	assert.Len(t, where, 3)
	assert.Equal(t, []any{"pottery", "%delhi%", "%meera%", "%meera%", "%meera%"}, args)
}
