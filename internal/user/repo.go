package user

import (
	"context"
	"errors"

	"github.com/guestpost-hub/guestposthub/internal/store"
)

// ErrNotFound is returned by lookups that match no user.
var ErrNotFound = errors.New("user not found")

// All returns the full user collection.
func All(ctx context.Context, s *store.Store) ([]User, error) {
	return store.List[User](ctx, s, store.KeyUsers)
}

// ByID looks a user up by identifier.
func ByID(ctx context.Context, s *store.Store, id string) (User, error) {
	users, err := All(ctx, s)
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

// ByEmail looks a user up by its login key.
func ByEmail(ctx context.Context, s *store.Store, email string) (User, error) {
	users, err := All(ctx, s)
	if err != nil {
		return User{}, err
	}
	for _, u := range users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}
