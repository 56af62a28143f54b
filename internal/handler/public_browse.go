// Package handler exposes HTTP handlers for both authenticated and public
// endpoints. This file defines the public browsing API: the marketplace
// catalogue and the artisan directory. These routes require no
// authentication and only ever serve active products; contact details and
// credential fields are filtered from every response.
package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kalakaar/artisan-marketplace/internal/repository"
)

// PublicHandler aggregates repositories needed for unauthenticated browsing.
type PublicHandler struct {
	Products *repository.ProductRepo
	Artisans *repository.ArtisanRepo
	Likes    *repository.LikeRepo
}

func NewPublicHandler(products *repository.ProductRepo, artisans *repository.ArtisanRepo, likes *repository.LikeRepo) *PublicHandler {
	return &PublicHandler{Products: products, Artisans: artisans, Likes: likes}
}

// parsePriceParam reads an optional non-negative price bound. A missing or
// empty parameter yields nil so no clause is built for it.
func parsePriceParam(raw string) (*uint64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ListProducts handles GET /v1/products, the public catalogue. The status
// constraint is applied inside the filter builder and cannot be overridden
// by any caller parameter.
func (h *PublicHandler) ListProducts(c echo.Context) error {
	minPrice, err := parsePriceParam(c.QueryParam("min_price"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid min_price"})
	}
	maxPrice, err := parsePriceParam(c.QueryParam("max_price"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid max_price"})
	}
	artisanID, _ := strconv.ParseUint(c.QueryParam("artisan"), 10, 64)
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	q := repository.ProductSearchQuery{
		Category:      strings.ToLower(strings.TrimSpace(c.QueryParam("category"))),
		ArtisanID:     artisanID,
		MinPriceCents: minPrice,
		MaxPriceCents: maxPrice,
		Location:      strings.TrimSpace(c.QueryParam("location")),
		Search:        strings.TrimSpace(c.QueryParam("search")),
		Sort:          strings.ToLower(strings.TrimSpace(c.QueryParam("sort"))),
		Page:          page,
		PageSize:      limit,
	}

	items, total, err := h.Products.Search(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	size := q.PageSize
	if size <= 0 {
		size = repository.DefaultPageSize
	}
	if size > repository.MaxPageSize {
		size = repository.MaxPageSize
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items": items,
		"total": total,
		"page":  max(page, 1),
		"pages": int64(math.Ceil(float64(total) / float64(size))),
	})
}

// GetProduct handles GET /v1/products/:id, the public detail page. Only
// active products are visible here; drafts and delisted items respond 404.
// Each successful fetch bumps the view counter in the store.
func (h *PublicHandler) GetProduct(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	p, err := h.Products.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := h.Products.IncrementViews(ctx, id); err == nil {
		p.Views++
	}

	likes, _ := h.Likes.Count(ctx, id)

	// Attach a sanitized artisan summary for the detail page.
	var artisan *repository.PublicArtisanRow
	if a, err := h.Artisans.GetByID(ctx, p.ArtisanID); err == nil {
		artisan = &repository.PublicArtisanRow{
			ID: a.ID, Name: a.Name, CraftType: a.CraftType,
			City: a.City, State: a.State, Country: a.Country,
			Bio: a.Bio, Experience: a.Experience,
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"product": p,
		"likes":   likes,
		"artisan": artisan,
	})
}

// ListArtisans handles GET /v1/artisans, the public directory.
func (h *PublicHandler) ListArtisans(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	q := repository.ArtisanSearchQuery{
		CraftType: strings.ToLower(strings.TrimSpace(c.QueryParam("craft_type"))),
		Location:  strings.TrimSpace(c.QueryParam("location")),
		Search:    strings.TrimSpace(c.QueryParam("search")),
		Page:      page,
		PageSize:  limit,
	}
	items, total, err := h.Artisans.Search(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "total": total})
}

// GetArtisan handles GET /v1/artisans/:id: a public profile plus up to
// eight of the artisan's active products.
func (h *PublicHandler) GetArtisan(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()

	a, err := h.Artisans.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artisan not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	products, _, err := h.Products.Search(ctx, repository.ProductSearchQuery{
		ArtisanID: id,
		PageSize:  8,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"artisan": repository.PublicArtisanRow{
			ID: a.ID, Name: a.Name, CraftType: a.CraftType,
			City: a.City, State: a.State, Country: a.Country,
			Bio: a.Bio, Experience: a.Experience,
		},
		"story":    a.Story.String,
		"products": products,
	})
}
