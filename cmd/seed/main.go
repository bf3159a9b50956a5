// Command seed populates the Redis-backed stores with demo data.
package main

import (
	"context"
	"flag"
	"log"

	"nexus/internal/cache"
	"nexus/internal/config"
	"nexus/internal/seed"
	"nexus/internal/store"
)

func main() {
	n := flag.Int("n", 10, "number of random posts to create in addition to the built-ins")
	withTimetable := flag.Bool("timetable", true, "seed the default weekly timetable")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	redisClient := cache.Connect(cfg.RedisURL)
	if redisClient == nil {
		log.Fatal("Redis is required for seeding; check REDIS_URL")
	}

	ctx := context.Background()
	posts := store.NewPostStore(ctx, redisClient)
	created := seed.Posts(ctx, posts, *n)
	log.Printf("Seeded %d posts (%d built-in)", created, created-*n)

	if *withTimetable {
		timetable := store.NewTimetableStore(ctx, redisClient)
		log.Printf("Seeded %d timetable entries", seed.Timetable(ctx, timetable))
	}
}
