package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/guestpost-hub/guestposthub/internal/config"
	"github.com/guestpost-hub/guestposthub/internal/store"
	"github.com/guestpost-hub/guestposthub/internal/user"
)

func main() {
	email := flag.String("email", "", "Email of the seller to approve")
	flag.Parse()

	if *email == "" {
		log.Fatalf("usage: go run cmd/adminutil/approve_seller/main.go -email seller@example.com")
	}

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

	found := false
	err = store.Mutate(ctx, st, store.KeyUsers, func(users []user.User) ([]user.User, error) {
		for i, u := range users {
			if u.Email == *email && u.Role == user.RoleSeller {
				users[i].IsApproved = true
				found = true
			}
		}
		return users, nil
	})
	if err != nil {
		log.Fatalf("failed to approve seller: %v", err)
	}
	if !found {
		log.Fatalf("no seller found with email: %s", *email)
	}

	fmt.Printf("Seller %s approved.\n", *email)
}
