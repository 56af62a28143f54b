package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceParam(t *testing.T) {
	v, err := parsePriceParam("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = parsePriceParam("  ")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = parsePriceParam("2500")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, uint64(2500), *v)

	_, err = parsePriceParam("-5")
	assert.Error(t, err)

	_, err = parsePriceParam("cheap")
	assert.Error(t, err)
}

func TestListProductsRejectsBadPriceBounds(t *testing.T) {
	h := &PublicHandler{}

	c, rec := newJSONContext(t, http.MethodGet, "/v1/products?min_price=abc", "", 0)
	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid min_price")

	c, rec = newJSONContext(t, http.MethodGet, "/v1/products?max_price=-1", "", 0)
	require.NoError(t, h.ListProducts(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid max_price")
}

func TestGetProductBadID(t *testing.T) {
	h := &PublicHandler{}
	c, rec := newJSONContext(t, http.MethodGet, "/v1/products/not-a-number", "", 0)
	pathParam(c, "id", "not-a-number")
	require.NoError(t, h.GetProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetArtisanBadID(t *testing.T) {
	h := &PublicHandler{}
	c, rec := newJSONContext(t, http.MethodGet, "/v1/artisans/not-a-number", "", 0)
	pathParam(c, "id", "not-a-number")
	require.NoError(t, h.GetArtisan(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
