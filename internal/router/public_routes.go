package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/kalakaar/artisan-marketplace/internal/config"
	"github.com/kalakaar/artisan-marketplace/internal/handler"
	"github.com/kalakaar/artisan-marketplace/internal/middleware"
)

// RegisterPublic registers the unauthenticated browse endpoints: the
// marketplace catalogue and the artisan directory. Responses are cached in
// Redis when available; with no Redis the cache middleware is a no-op.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	cache := middleware.NewRedisCache(cacheCfg, rdb)

	e.GET("/v1/products", p.ListProducts, cache)
	e.GET("/v1/products/:id", p.GetProduct)
	e.GET("/v1/artisans", p.ListArtisans, cache)
	e.GET("/v1/artisans/:id", p.GetArtisan, cache)
}

// RegisterAI registers the content generation endpoints. They proxy a
// metered upstream service, so the Redis token bucket throttles them.
func RegisterAI(e *echo.Echo, a *handler.AIHandler, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	g := e.Group("/v1/ai")
	g.Use(middleware.NewTokenBucket(rlCfg, rdb))

	g.POST("/product-description", a.GenerateProductDescription)
	g.POST("/social-post", a.GenerateSocialPost)
	g.POST("/marketing-copy", a.GenerateMarketingCopy)
	g.POST("/story", a.GenerateStory)
	g.POST("/seo-content", a.GenerateSEOContent)
}
