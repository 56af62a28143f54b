// Package handler — marketing content generation endpoints. These wrap the
// external text-generation backend; a failing backend is a retryable 502
// for the caller and never affects the rest of the API.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kalakaar/artisan-marketplace/internal/ai"
)

// AIHandler bundles the generation client for the content endpoints.
type AIHandler struct {
	Client *ai.Client
}

func NewAIHandler(client *ai.Client) *AIHandler {
	return &AIHandler{Client: client}
}

func (h *AIHandler) generate(c echo.Context, prompt string, key string) error {
	text, err := h.Client.Generate(c.Request().Context(), prompt)
	if err != nil {
		if errors.Is(err, ai.ErrUpstream) {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": "generation service unavailable, try again"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "generation failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{key: text})
}

// GenerateProductDescription handles POST /v1/ai/product-description.
func (h *AIHandler) GenerateProductDescription(c echo.Context) error {
	var req struct {
		ProductName     string `json:"product_name"`
		CraftType       string `json:"craft_type"`
		Description     string `json:"description"`
		CulturalContext string `json:"cultural_context"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ProductName == "" || req.CraftType == "" || req.Description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product_name/craft_type/description required"})
	}
	return h.generate(c, ai.ProductDescriptionPrompt(req.ProductName, req.CraftType, req.Description, req.CulturalContext), "description")
}

// GenerateSocialPost handles POST /v1/ai/social-post.
func (h *AIHandler) GenerateSocialPost(c echo.Context) error {
	var req struct {
		ProductName string `json:"product_name"`
		Description string `json:"description"`
		Platform    string `json:"platform"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ProductName == "" || req.Description == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product_name/description required"})
	}
	return h.generate(c, ai.SocialPostPrompt(req.ProductName, req.Description, req.Platform), "post")
}

// GenerateMarketingCopy handles POST /v1/ai/marketing-copy.
func (h *AIHandler) GenerateMarketingCopy(c echo.Context) error {
	var req struct {
		ProductName  string `json:"product_name"`
		ArtisanStory string `json:"artisan_story"`
		SpecialOffer string `json:"special_offer"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ProductName == "" || req.ArtisanStory == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "product_name/artisan_story required"})
	}
	return h.generate(c, ai.MarketingCopyPrompt(req.ProductName, req.ArtisanStory, req.SpecialOffer), "copy")
}

// GenerateStory handles POST /v1/ai/story.
func (h *AIHandler) GenerateStory(c echo.Context) error {
	var req struct {
		ArtisanName          string `json:"artisan_name"`
		CraftType            string `json:"craft_type"`
		PersonalStory        string `json:"personal_story"`
		CulturalSignificance string `json:"cultural_significance"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ArtisanName == "" || req.CraftType == "" || req.PersonalStory == "" || req.CulturalSignificance == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "artisan_name/craft_type/personal_story/cultural_significance required"})
	}
	return h.generate(c, ai.StoryPrompt(req.ArtisanName, req.CraftType, req.PersonalStory, req.CulturalSignificance), "story")
}

// GenerateSEOContent handles POST /v1/ai/seo-content.
func (h *AIHandler) GenerateSEOContent(c echo.Context) error {
	var req struct {
		BaseTitle string `json:"base_title"`
		Keywords  string `json:"keywords"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.BaseTitle == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "base_title required"})
	}
	return h.generate(c, ai.SEOPrompt(req.BaseTitle, req.Keywords), "seo_content")
}
