// Command seed populates the database with demo content.
package main

import (
	"context"
	"flag"
	"log"

	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of users to create")
	numPosts := flag.Int("posts", 50, "Number of posts to create")
	maxDays := flag.Int("days", 90, "Spread post creation dates over this many past days")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d posts\n", *numUsers, *numPosts)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	if err := database.ApplySchema(ctx, db, cfg); err != nil {
		log.Fatalf("Failed to apply database schema: %v", err)
	}

	if _, err := seed.EnsureDefaultUser(ctx, db); err != nil {
		log.Fatalf("Default user seeding failed: %v", err)
	}

	if err := seed.Run(ctx, db, seed.Options{
		Users:   *numUsers,
		Posts:   *numPosts,
		MaxDays: *maxDays,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! The database is now populated with demo content.")
	log.Printf("All seeded users share the password: %s", seed.DefaultUserPassword)
}
