package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/kalakaar/artisan-marketplace/internal/ai"
	"github.com/kalakaar/artisan-marketplace/internal/config"
	"github.com/kalakaar/artisan-marketplace/internal/database"
	"github.com/kalakaar/artisan-marketplace/internal/handler"
	"github.com/kalakaar/artisan-marketplace/internal/queue"
	"github.com/kalakaar/artisan-marketplace/internal/repository"
	"github.com/kalakaar/artisan-marketplace/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(ctx, db); err != nil {
		cancel()
		log.Fatalf("db migrate: %v", err)
	}
	cancel()

	artisans := repository.NewArtisanRepo(db)
	products := repository.NewProductRepo(db)
	likes := repository.NewLikeRepo(db)

	rdb := config.NewRedisClient() // nil disables caching and rate limiting
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	aiClient := ai.NewClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel, cfg.AITimeout)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, artisans), cfg.JWTSecret)
	router.RegisterProducts(e, handler.NewProductHandler(products, likes), cfg.JWTSecret)
	router.RegisterPublic(e, handler.NewPublicHandler(products, artisans, likes), config.LoadCacheConfig(), rdb)
	router.RegisterAI(e, handler.NewAIHandler(aiClient), config.LoadRateLimitConfig(), rdb)

	// Background consumer for product activity events.
	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			log.Printf("activity consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
