package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing title", `{"description":"a bowl","category":"pottery","price_cents":1500}`, "title is required"},
		{"missing description", `{"title":"Bowl","category":"pottery","price_cents":1500}`, "description is required"},
		{"unknown category", `{"title":"Bowl","description":"a bowl","category":"gadgets","price_cents":1500}`, "unknown category"},
		{"missing price", `{"title":"Bowl","description":"a bowl","category":"pottery"}`, "price_cents is required"},
	}
	h := &ProductHandler{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newJSONContext(t, http.MethodPost, "/v1/products", tc.body, 7)
			require.NoError(t, h.CreateProduct(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.want)
		})
	}
}

func TestCreateProductRequiresSubject(t *testing.T) {
	h := &ProductHandler{}
	c, rec := newJSONContext(t, http.MethodPost, "/v1/products", `{}`, 0)
	require.NoError(t, h.CreateProduct(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProductValidation(t *testing.T) {
	h := &ProductHandler{}

	t.Run("bad id", func(t *testing.T) {
		c, rec := newJSONContext(t, http.MethodPut, "/v1/products/abc", `{}`, 7)
		pathParam(c, "id", "abc")
		require.NoError(t, h.UpdateProduct(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid id")
	})

	t.Run("blank title", func(t *testing.T) {
		c, rec := newJSONContext(t, http.MethodPut, "/v1/products/1", `{"title":"  "}`, 7)
		pathParam(c, "id", "1")
		require.NoError(t, h.UpdateProduct(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid title")
	})

	t.Run("unknown status", func(t *testing.T) {
		c, rec := newJSONContext(t, http.MethodPut, "/v1/products/1", `{"status":"archived"}`, 7)
		pathParam(c, "id", "1")
		require.NoError(t, h.UpdateProduct(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown status")
	})
}

func TestDeleteProductBadID(t *testing.T) {
	h := &ProductHandler{}
	c, rec := newJSONContext(t, http.MethodDelete, "/v1/products/zero", "", 7)
	pathParam(c, "id", "zero")
	require.NoError(t, h.DeleteProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestToggleLikeBadID(t *testing.T) {
	h := &ProductHandler{}
	c, rec := newJSONContext(t, http.MethodPost, "/v1/products/x/like", "", 7)
	pathParam(c, "id", "x")
	require.NoError(t, h.ToggleLike(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMyProductsUnknownStatus(t *testing.T) {
	h := &ProductHandler{}
	c, rec := newJSONContext(t, http.MethodGet, "/v1/products/mine?status=archived", "", 7)
	require.NoError(t, h.MyProducts(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown status")
}
