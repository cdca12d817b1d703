package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/emsinv/ems-inventory/internal/config"
	"github.com/emsinv/ems-inventory/internal/handler"
	"github.com/emsinv/ems-inventory/internal/middleware"
	"github.com/emsinv/ems-inventory/internal/queue"
	"github.com/emsinv/ems-inventory/internal/router"
	"github.com/emsinv/ems-inventory/internal/service"
	"github.com/emsinv/ems-inventory/internal/store"
)

func main() {
	// Load .env when present; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Printf("loaded configuration from .env")
	}
	cfg := config.Load()

	st := store.New()
	if cfg.SeedFixtures {
		if err := st.Seed(); err != nil {
			log.Fatalf("seed fixtures: %v", err)
		}
	}

	// Redis is optional: without it the cache and rate limiter become
	// pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, response cache and rate limiting disabled")
	}
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	// Consume stock movement events in the background for the audit log.
	go func() {
		if err := queue.StartStockConsumer(); err != nil {
			log.Printf("stock consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	authHandler := handler.NewAuthHandler(cfg, st)
	api := router.API{
		Dashboard: handler.NewDashboardHandler(st),
		Equipment: handler.NewEquipmentHandler(st, service.PublishStockMovement),
		Usage:     handler.NewUsageHandler(st, service.PublishStockMovement),
		Alerts:    handler.NewAlertHandler(st),
		Category:  handler.NewCategoryHandler(st),
	}

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterAPI(e, api, cfg.JWTSecret, cacheMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
