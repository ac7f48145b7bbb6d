package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"dnavault.com/internal/api"
	"dnavault.com/internal/config"
	"dnavault.com/internal/infra"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()

	// 2. Initialize infrastructure
	// Postgres
	pg, err := infra.NewPostgresClient(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Redis backs the logout token denylist; without it logout is
	// client-side only.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = infra.NewRedisClient(cfg.Redis)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
	} else {
		log.Println("Redis not configured; token revocation disabled")
	}

	// 3. Set up the Fiber server and routes
	app := api.NewServer(cfg)
	router := api.NewRouter(app, cfg, pg.DB, rdb)
	router.RegisterRoutes()

	// 4. Start the server
	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := app.Listen(cfg.Server.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
