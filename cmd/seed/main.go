package main

import (
	"context"
	"log"
	"time"

	"techcareer/internal/config"
	dbpostgres "techcareer/internal/database/postgres"
	"techcareer/internal/database/schema"
	"techcareer/internal/database/seeder"
	"techcareer/internal/infrastructure/cache"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("close error: %v", err)
		}
	}()

	if err := schema.Ensure(ctx, db); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}

	runner := seeder.Runner{Seeders: seeder.Defaults()}
	if err := runner.Run(ctx, db); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	// Cached market aggregates are stale after a seeding run.
	c := cache.NewRedis(log.Default())
	if err := c.InvalidateMarketCaches(ctx); err != nil {
		log.Printf("cache invalidation error: %v", err)
	}

	log.Printf("seeding complete")
}
