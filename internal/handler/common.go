package handler // handler defines http handlers

import (
    "errors"

    "github.com/labstack/echo/v4"

    "github.com/kalakaar/artisan-marketplace/internal/middleware"
)

// Closed enumerations shared by registration and product validation. The
// sets match the schema ENUMs; anything else is rejected before a query is
// built.
var craftTypes = map[string]bool{
    "pottery": true, "textile": true, "woodwork": true, "metalwork": true,
    "jewelry": true, "painting": true, "other": true,
}

var productCategories = map[string]bool{
    "pottery": true, "textile": true, "woodwork": true, "metalwork": true,
    "jewelry": true, "painting": true, "sculpture": true, "other": true,
}

var productStatuses = map[string]bool{
    "draft": true, "active": true, "sold": true, "inactive": true,
}

// getArtisanID extracts the verified subject id stored by the JWT
// middleware. The value is only ever set by the middleware, so a missing
// or mistyped value means the route was registered without it.
func getArtisanID(c echo.Context) (uint64, error) {
    if id, ok := c.Get(middleware.ContextArtisanID).(uint64); ok {
        return id, nil
    }
    return 0, errors.New("no authenticated artisan in context")
}
