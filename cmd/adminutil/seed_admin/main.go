package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/guestpost-hub/guestposthub/internal/auth"
	"github.com/guestpost-hub/guestposthub/internal/config"
	"github.com/guestpost-hub/guestposthub/internal/store"
)

// Seeds the default administrator account if no admin exists. Idempotent.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	st, err := store.Open(ctx, store.Options{
		Driver:      cfg.StoreDriver,
		PostgresURL: cfg.DatabaseURL,
		RedisURL:    cfg.RedisURL,
		RedisPrefix: cfg.RedisPrefix,
	})
	if err != nil {
		log.Fatalf("store error: %v", err)
	}
	defer st.Close()

	if err := auth.NewSession(st).Bootstrap(ctx); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	fmt.Println("Admin account ensured.")
}
