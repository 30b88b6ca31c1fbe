// Command cleanup purges contact submissions older than a cutoff age.
// Retention is operator-driven; nothing in the API deletes submissions.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/llyods/backend/internal/logging"
	"github.com/llyods/backend/internal/repository"
)

func main() {
	_ = godotenv.Load()
	logging.Setup(os.Getenv("APP_ENV"))

	days := flag.Int("days", 90, "delete submissions older than this many days")
	flag.Parse()

	if *days <= 0 {
		logging.Fatal("days must be positive", "days", *days)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logging.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, dbURL)
	if err != nil {
		logging.Fatal("database connection failed", "error", err)
	}
	defer pool.Close()

	repo := repository.NewPgSubmissionRepository(pool)
	deleted, err := repo.DeleteOlderThan(ctx, *days)
	if err != nil {
		logging.Fatal("cleanup failed", "error", err)
	}

	slog.Info("cleanup complete", "deleted", deleted, "older_than_days", *days)
}
