// Package handler defines HTTP handlers for authenticated artisan
// operations on products. Every mutation here is owner-scoped: the
// repository filters by both product id and the verified artisan id in a
// single statement, and a product owned by someone else is
// indistinguishable from a missing one.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kalakaar/artisan-marketplace/internal/queue"
	"github.com/kalakaar/artisan-marketplace/internal/repository"
	queue_publisher "github.com/kalakaar/artisan-marketplace/internal/service"
)

// ProductHandler bundles repositories for artisans to manage their catalogue.
type ProductHandler struct {
	Products *repository.ProductRepo
	Likes    *repository.LikeRepo
}

func NewProductHandler(products *repository.ProductRepo, likes *repository.LikeRepo) *ProductHandler {
	if products == nil || likes == nil {
		panic("nil repository passed to NewProductHandler")
	}
	return &ProductHandler{Products: products, Likes: likes}
}

type createProductReq struct {
	Title            string  `json:"title"`
	Description      string  `json:"description"`
	ShortDescription string  `json:"short_description"`
	Category         string  `json:"category"`
	PriceCents       *uint64 `json:"price_cents"`
	Currency         string  `json:"currency"`
	Quantity         uint32  `json:"quantity"`
	SKU              string  `json:"sku"`
	Materials        string  `json:"materials"`
	Tags             string  `json:"tags"`
}

type updateProductReq struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	ShortDescription *string `json:"short_description"`
	Category         *string `json:"category"`
	PriceCents       *uint64 `json:"price_cents"`
	Currency         *string `json:"currency"`
	Quantity         *uint32 `json:"quantity"`
	Materials        *string `json:"materials"`
	Tags             *string `json:"tags"`
	Status           *string `json:"status"`
	Featured         *bool   `json:"featured"`
}

func publishActivity(typ string, p repository.Product) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = queue_publisher.PublishProductActivity(ctx, queue.ProductActivityEvent{
		Type:       typ,
		ProductID:  p.ID,
		ArtisanID:  p.ArtisanID,
		Title:      p.Title,
		Category:   p.Category,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// CreateProduct handles POST /v1/products. The owner is always the
// authenticated artisan; any artisan id in the payload has no field to
// land in. New products start in draft status.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	artisanID, err := getArtisanID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createProductReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Category = strings.ToLower(strings.TrimSpace(req.Category))

	switch {
	case req.Title == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	case len(req.Title) > 100:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title too long"})
	case strings.TrimSpace(req.Description) == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "description is required"})
	case len(req.Description) > 2000:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "description too long"})
	case !productCategories[req.Category]:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown category"})
	case req.PriceCents == nil:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price_cents is required"})
	}

	p := repository.Product{
		ArtisanID:        artisanID,
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Category:         req.Category,
		PriceCents:       *req.PriceCents,
		Currency:         strings.ToUpper(strings.TrimSpace(req.Currency)),
		Quantity:         req.Quantity,
		SKU:              strings.TrimSpace(req.SKU),
		Materials:        req.Materials,
		Tags:             req.Tags,
	}
	if err := h.Products.Create(c.Request().Context(), &p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create product"})
	}

	publishActivity(queue.ActivityCreated, p)
	return c.JSON(http.StatusCreated, p)
}

// UpdateProduct handles PUT /v1/products/:id. The repository performs a
// single UPDATE scoped by id and owner; a non-owner receives 404, never
// 403, so existence is not confirmed to them.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	artisanID, err := getArtisanID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateProductReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Title != nil {
		t := strings.TrimSpace(*req.Title)
		if t == "" || len(t) > 100 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid title"})
		}
		req.Title = &t
	}
	if req.Description != nil && (len(*req.Description) == 0 || len(*req.Description) > 2000) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid description"})
	}
	if req.Category != nil {
		cat := strings.ToLower(strings.TrimSpace(*req.Category))
		if !productCategories[cat] {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown category"})
		}
		req.Category = &cat
	}
	if req.Status != nil {
		st := strings.ToLower(strings.TrimSpace(*req.Status))
		if !productStatuses[st] {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
		}
		req.Status = &st
	}

	patch := repository.ProductPatch{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Category:         req.Category,
		PriceCents:       req.PriceCents,
		Currency:         req.Currency,
		Quantity:         req.Quantity,
		Materials:        req.Materials,
		Tags:             req.Tags,
		Status:           req.Status,
		Featured:         req.Featured,
	}
	p, err := h.Products.Update(c.Request().Context(), id, artisanID, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		case errors.Is(err, repository.ErrNoFields):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "no fields to update"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}

	if req.Status != nil && *req.Status == repository.StatusActive {
		publishActivity(queue.ActivityPublished, p)
	}
	return c.JSON(http.StatusOK, p)
}

// DeleteProduct handles DELETE /v1/products/:id with the same owner-scoped
// single-statement semantics as update.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	artisanID, err := getArtisanID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Products.Delete(c.Request().Context(), id, artisanID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// MyProducts handles GET /v1/products/mine: the artisan's own catalogue in
// every status, optionally filtered.
func (h *ProductHandler) MyProducts(c echo.Context) error {
	artisanID, err := getArtisanID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	status := strings.ToLower(strings.TrimSpace(c.QueryParam("status")))
	if status != "" && !productStatuses[status] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
	}
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	items, total, err := h.Products.ListByOwner(c.Request().Context(), artisanID, status, page, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "total": total})
}

// ToggleLike handles POST /v1/products/:id/like. The membership flip is a
// single conditional statement in the repository, so concurrent toggles
// settle on a consistent state and the count is always derived.
func (h *ProductHandler) ToggleLike(c echo.Context) error {
	artisanID, err := getArtisanID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	liked, count, err := h.Likes.Toggle(c.Request().Context(), id, artisanID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "like failed"})
	}

	if liked {
		publishActivity(queue.ActivityLiked, repository.Product{ID: id, ArtisanID: artisanID})
	}
	return c.JSON(http.StatusOK, echo.Map{"liked": liked, "likes": count})
}
