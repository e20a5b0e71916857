// Command cleanup-tokens deletes expired and revoked refresh tokens.
//
// Usage:
//
//	cleanup-tokens
//
// Reads the same configuration as the server (CONFIG_PATH or environment).
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/heartmarshall/growth-journal-backend/internal/adapter/postgres"
	tokenrepo "github.com/heartmarshall/growth-journal-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/growth-journal-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	n, err := tokenrepo.New(pool).DeleteExpired(ctx)
	if err != nil {
		log.Fatalf("cleanup tokens: %v", err)
	}

	fmt.Printf("Deleted %d expired/revoked refresh tokens.\n", n)
}
