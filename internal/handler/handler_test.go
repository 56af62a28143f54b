package handler

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/kalakaar/artisan-marketplace/internal/middleware"
)

// newJSONContext builds an Echo context for a JSON request body, optionally
// acting as an authenticated artisan. Only validation paths are exercised
// this way; anything that reaches a repository needs a database.
func newJSONContext(t *testing.T, method, target, body string, artisanID uint64) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if artisanID != 0 {
		c.Set(middleware.ContextArtisanID, artisanID)
	}
	return c, rec
}

func pathParam(c echo.Context, name, value string) {
	c.SetParamNames(name)
	c.SetParamValues(value)
}
