// Command migrate applies the embedded SQL migrations or prints their status.
//
// Usage:
//
//	migrate [up|status]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/growth-journal-backend/internal/adapter/postgres"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	cmd := "up"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch cmd {
	case "up":
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		if err := postgres.Migrate(ctx, dsn, logger); err != nil {
			log.Fatal(err)
		}
	case "status":
		statuses, err := postgres.MigrationStatus(ctx, dsn)
		if err != nil {
			log.Fatal(err)
		}
		for _, s := range statuses {
			applied := "pending"
			if !s.AppliedAt.IsZero() {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%05d  %-28s  %s\n", s.Source.Version, s.Source.Path, applied)
		}
	default:
		log.Fatalf("unknown command %q (want up or status)", cmd)
	}
}
