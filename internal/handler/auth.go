package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kalakaar/artisan-marketplace/internal/config"
	"github.com/kalakaar/artisan-marketplace/internal/repository"
	"github.com/kalakaar/artisan-marketplace/internal/utils"
)

// AuthHandler bundles dependencies for auth and profile endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Artisans *repository.ArtisanRepo
}

func NewAuthHandler(cfg config.Config, a *repository.ArtisanRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Artisans: a}
}

// dummyHash is compared against when login hits an unknown email, so both
// failure paths spend a full bcrypt verification and respond identically.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// ----- DTOs -----

type registerReq struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	CraftType  string `json:"craft_type"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	Bio        string `json:"bio"`
	Experience uint32 `json:"experience"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// profileReq carries the updatable profile fields. Email and password are
// not part of this shape: a caller that sends them sees them ignored.
type profileReq struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	CraftType  *string `json:"craft_type"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	Country    *string `json:"country"`
	Bio        *string `json:"bio"`
	Story      *string `json:"story"`
	Experience *uint32 `json:"experience"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type artisanPart struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CraftType string `json:"craft_type"`
	City      string `json:"city"`
	State     string `json:"state"`
}

type authResp struct {
	Artisan artisanPart `json:"artisan"`
	Access  tokenPart   `json:"access"`
}

type profileResp struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	CraftType  string    `json:"craft_type"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	Country    string    `json:"country"`
	Bio        string    `json:"bio,omitempty"`
	Story      string    `json:"story,omitempty"`
	Experience uint32    `json:"experience"`
	CreatedAt  time.Time `json:"created_at"`
}

func toProfileResp(a repository.Artisan) profileResp {
	return profileResp{
		ID:         a.ID,
		Name:       a.Name,
		Email:      a.Email,
		Phone:      a.Phone,
		CraftType:  a.CraftType,
		City:       a.City,
		State:      a.State,
		Country:    a.Country,
		Bio:        a.Bio,
		Story:      a.Story.String,
		Experience: a.Experience,
		CreatedAt:  a.CreatedAt,
	}
}

func (h *AuthHandler) tokenTTL() time.Duration {
	return time.Duration(h.Cfg.TokenTTLDays) * 24 * time.Hour
}

// Register: create artisan and return a session token immediately.
// Email uniqueness rides on the unique index; a duplicate insert comes back
// as repository.ErrEmailExists regardless of how requests interleave.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.CraftType = strings.ToLower(strings.TrimSpace(req.CraftType))
	req.City = strings.TrimSpace(req.City)
	req.State = strings.TrimSpace(req.State)
	req.Country = strings.TrimSpace(req.Country)

	switch {
	case req.Name == "" || req.Email == "" || req.Password == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name/email/password required"})
	case len(req.Password) < 6:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password must be at least 6 characters"})
	case !craftTypes[req.CraftType]:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown craft_type"})
	case req.City == "" || req.State == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "city/state required"})
	case len(req.Bio) > 500:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bio too long"})
	}
	if req.Country == "" {
		req.Country = "India"
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash failed"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a := repository.Artisan{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(req.Phone),
		CraftType:    req.CraftType,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		Bio:          req.Bio,
		Experience:   req.Experience,
	}
	uid, err := h.Artisans.Create(ctx, &a)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create artisan failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, uid, h.tokenTTL())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusCreated, authResp{
		Artisan: artisanPart{ID: uid, Name: a.Name, Email: a.Email, CraftType: a.CraftType, City: a.City, State: a.State},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Login: verify credentials and return a fresh token. An unknown email and
// a wrong password produce byte-identical responses; which one happened is
// never revealed.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Artisans.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			_ = utils.VerifyPassword(dummyHash, req.Password)
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(a.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, a.ID, h.tokenTTL())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		Artisan: artisanPart{ID: a.ID, Name: a.Name, Email: a.Email, CraftType: a.CraftType, City: a.City, State: a.State},
		Access:  tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Me: return the authenticated artisan's own profile.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, err := getArtisanID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Artisans.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artisan not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toProfileResp(a))
}

// UpdateProfile: patch the authenticated artisan's profile. The subject id
// comes from the token only; email and password are not updatable here.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	uid, err := getArtisanID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.CraftType != nil {
		ct := strings.ToLower(strings.TrimSpace(*req.CraftType))
		if !craftTypes[ct] {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown craft_type"})
		}
		req.CraftType = &ct
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name cannot be empty"})
	}
	if req.Bio != nil && len(*req.Bio) > 500 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bio too long"})
	}
	if req.Story != nil && len(*req.Story) > 2000 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "story too long"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	patch := repository.ArtisanProfilePatch{
		Name:       req.Name,
		Phone:      req.Phone,
		CraftType:  req.CraftType,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
		Bio:        req.Bio,
		Story:      req.Story,
		Experience: req.Experience,
	}
	if err := h.Artisans.UpdateProfile(ctx, uid, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artisan not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	a, err := h.Artisans.GetByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toProfileResp(a))
}
