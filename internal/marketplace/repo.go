package marketplace

import (
	"context"
	"errors"

	"github.com/guestpost-hub/guestposthub/internal/store"
)

var (
	ErrServiceNotFound   = errors.New("service not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidListing    = errors.New("title and a positive price are required")
	ErrMessageRequired   = errors.New("order message is required")
	ErrIllegalTransition = errors.New("illegal order status transition")
)

// Services returns the full service collection.
func Services(ctx context.Context, s *store.Store) ([]Service, error) {
	return store.List[Service](ctx, s, store.KeyServices)
}

// ServiceByID finds a service regardless of approval state.
func ServiceByID(ctx context.Context, s *store.Store, id string) (Service, error) {
	services, err := Services(ctx, s)
	if err != nil {
		return Service{}, err
	}
	for _, svc := range services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return Service{}, ErrServiceNotFound
}

// Orders returns the full order collection.
func Orders(ctx context.Context, s *store.Store) ([]Order, error) {
	return store.List[Order](ctx, s, store.KeyOrders)
}
