package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalakaar/artisan-marketplace/internal/utils"
)

const testSecret = "middleware-test-secret"

// invoke runs a request through JWTAuth with a probe handler that records
// the artisan id placed in the context.
func invoke(t *testing.T, authHeader string) (*httptest.ResponseRecorder, uint64, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID uint64
	var called bool
	h := JWTAuth(testSecret)(func(c echo.Context) error {
		called = true
		gotID, _ = c.Get(ContextArtisanID).(uint64)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, gotID, called
}

func TestJWTAuthValidToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 123, time.Hour)
	require.NoError(t, err)

	rec, gotID, called := invoke(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, uint64(123), gotID)
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec, _, called := invoke(t, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "missing bearer token")
}

func TestJWTAuthNonBearerScheme(t *testing.T) {
	rec, _, called := invoke(t, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "missing bearer token")
}

func TestJWTAuthBadToken(t *testing.T) {
	rec, _, called := invoke(t, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("some-other-secret", 123, time.Hour)
	require.NoError(t, err)

	rec, _, called := invoke(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "invalid token")
}

func TestJWTAuthExpiredToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 123, -time.Minute)
	require.NoError(t, err)

	rec, _, called := invoke(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Contains(t, rec.Body.String(), "invalid token")
}
