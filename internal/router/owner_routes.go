package router

import (
	"github.com/labstack/echo/v4"

	"github.com/kalakaar/artisan-marketplace/internal/handler"
	"github.com/kalakaar/artisan-marketplace/internal/middleware"
)

// RegisterProducts registers the authenticated product management routes.
// Every handler behind this group reads the owning artisan from the
// verified token in the request context, never from the payload.
func RegisterProducts(e *echo.Echo, p *handler.ProductHandler, jwtSecret string) {
	g := e.Group("/v1/products")
	g.Use(middleware.JWTAuth(jwtSecret))

	g.POST("", p.CreateProduct)
	g.GET("/mine", p.MyProducts)
	g.PUT("/:id", p.UpdateProduct)
	g.DELETE("/:id", p.DeleteProduct)
	g.POST("/:id/like", p.ToggleLike)
}
