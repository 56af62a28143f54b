package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/kalakaar/artisan-marketplace/internal/utils" // token verification
)

// ContextArtisanID is the context key under which the verified subject id is
// stored for downstream handlers.
const ContextArtisanID = "artisan_id"

// JWTAuth returns an Echo middleware that validates a Bearer session token
// and injects the verified artisan id into the request context.  The
// provided secret must match the one used when issuing tokens.  Handlers
// behind this middleware read the subject via c.Get(ContextArtisanID) and
// never from the request body: no bound DTO carries an owner field, so a
// caller-supplied "artisan_id" can never reach the store.
//
// A missing or non-Bearer Authorization header yields 401 with a "missing
// bearer token" body; any verification failure yields 401 with a single
// uniform "invalid token" body regardless of whether the signature, the
// format or the expiry was at fault.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            artisanID, err := utils.VerifyAccessToken(secret, raw)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }

            c.Set(ContextArtisanID, artisanID)
            return next(c)
        }
    }
}
