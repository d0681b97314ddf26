package marketplace

import (
	"context"
	"strings"
	"time"

	"github.com/guestpost-hub/guestposthub/internal/store"
	"github.com/guestpost-hub/guestposthub/internal/user"
)

// PlaceOrder creates a pending order for an approved service, freezing the
// listing terms into a snapshot. Unapproved or missing services are not
// orderable.
func PlaceOrder(ctx context.Context, s *store.Store, buyer user.User, serviceID, message string) (Order, error) {
	if strings.TrimSpace(message) == "" {
		return Order{}, ErrMessageRequired
	}

	svc, err := ServiceByID(ctx, s, serviceID)
	if err != nil {
		return Order{}, err
	}
	if !svc.IsApproved {
		return Order{}, ErrServiceNotFound
	}

	order := Order{
		ID:        newID(),
		ServiceID: svc.ID,
		BuyerID:   buyer.ID,
		SellerID:  svc.SellerID,
		Status:    StatusPending,
		Message:   message,
		CreatedAt: time.Now().UTC(),
		Service: ServiceSnapshot{
			Title:       svc.Title,
			Price:       svc.Price,
			SellerName:  svc.SellerName,
			SellerPhone: svc.SellerPhone,
		},
	}
	err = store.Mutate(ctx, s, store.KeyOrders, func(orders []Order) ([]Order, error) {
		return append(orders, order), nil
	})
	if err != nil {
		return Order{}, err
	}
	return order, nil
}

// TransitionOrder moves one of the seller's orders to next, enforcing the
// state machine. Orders belonging to other sellers are reported as not
// found.
func TransitionOrder(ctx context.Context, s *store.Store, sellerID, orderID string, next Status) (Order, error) {
	var updated Order
	err := store.Mutate(ctx, s, store.KeyOrders, func(orders []Order) ([]Order, error) {
		for i, o := range orders {
			if o.ID != orderID || o.SellerID != sellerID {
				continue
			}
			if !o.Status.CanTransition(next) {
				return nil, ErrIllegalTransition
			}
			o.Status = next
			orders[i] = o
			updated = o
			return orders, nil
		}
		return nil, ErrOrderNotFound
	})
	if err != nil {
		return Order{}, err
	}
	return updated, nil
}

// OrdersForBuyer returns the orders the user placed.
func OrdersForBuyer(ctx context.Context, s *store.Store, buyerID string) ([]Order, error) {
	orders, err := Orders(ctx, s)
	if err != nil {
		return nil, err
	}
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.BuyerID == buyerID {
			out = append(out, o)
		}
	}
	return out, nil
}

// OrdersForSeller returns the orders targeting the seller's services.
func OrdersForSeller(ctx context.Context, s *store.Store, sellerID string) ([]Order, error) {
	orders, err := Orders(ctx, s)
	if err != nil {
		return nil, err
	}
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.SellerID == sellerID {
			out = append(out, o)
		}
	}
	return out, nil
}
