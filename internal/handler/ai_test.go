package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalakaar/artisan-marketplace/internal/ai"
)

func TestGenerateEndpointsRequireFields(t *testing.T) {
	// Validation happens before the client is touched.
	h := NewAIHandler(ai.NewClient("", "", "", 0))

	run := func(name, target, body string, fn echo.HandlerFunc) {
		t.Run(name, func(t *testing.T) {
			c, rec := newJSONContext(t, http.MethodPost, target, body, 0)
			require.NoError(t, fn(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	run("product description", "/v1/ai/product-description", `{"product_name":"Vase"}`, h.GenerateProductDescription)
	run("social post", "/v1/ai/social-post", `{"product_name":"Vase"}`, h.GenerateSocialPost)
	run("marketing copy", "/v1/ai/marketing-copy", `{"product_name":"Vase"}`, h.GenerateMarketingCopy)
	run("story", "/v1/ai/story", `{"artisan_name":"Meera"}`, h.GenerateStory)
	run("seo content", "/v1/ai/seo-content", `{}`, h.GenerateSEOContent)
}

func TestGenerateEndpointUpstreamFailure(t *testing.T) {
	// An unconfigured client always reports an upstream failure.
	h := NewAIHandler(ai.NewClient("", "", "", 0))

	body := `{"product_name":"Vase","craft_type":"pottery","description":"cobalt glaze"}`
	c, rec := newJSONContext(t, http.MethodPost, "/v1/ai/product-description", body, 0)
	require.NoError(t, h.GenerateProductDescription(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "generation service unavailable")
}

func TestGenerateEndpointSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "A lovely vase."}},
			},
		})
	}))
	defer srv.Close()

	h := NewAIHandler(ai.NewClient(srv.URL, "", "test-model", time.Second))

	body := `{"product_name":"Vase","craft_type":"pottery","description":"cobalt glaze"}`
	c, rec := newJSONContext(t, http.MethodPost, "/v1/ai/product-description", body, 0)
	require.NoError(t, h.GenerateProductDescription(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "A lovely vase.", resp["description"])
}
