package marketplace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/guestpost-hub/guestposthub/internal/store"
	"github.com/guestpost-hub/guestposthub/internal/user"
)

var testBuyer = user.User{
	ID:         "buyer-1",
	FirstName:  "Jane",
	LastName:   "Buyer",
	Email:      "jane@example.com",
	Role:       user.RoleBuyer,
	IsApproved: true,
}

func approvedService(t *testing.T, ctx context.Context, st *store.Store) Service {
	t.Helper()
	svc, err := CreateListing(ctx, st, testSeller, testListing())
	require.NoError(t, err)
	err = store.Mutate(ctx, st, store.KeyServices, func(services []Service) ([]Service, error) {
		for i := range services {
			if services[i].ID == svc.ID {
				services[i].IsApproved = true
			}
		}
		return services, nil
	})
	require.NoError(t, err)
	svc.IsApproved = true
	return svc
}

func TestPlaceOrderSnapshotsService(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	svc := approvedService(t, ctx, st)

	order, err := PlaceOrder(ctx, st, testBuyer, svc.ID, "Two posts about Go tooling, please")
	require.NoError(t, err)
	require.Equal(t, StatusPending, order.Status)
	require.Equal(t, testBuyer.ID, order.BuyerID)
	require.Equal(t, testSeller.ID, order.SellerID)
	require.Equal(t, svc.Title, order.Service.Title)
	require.Equal(t, svc.Price, order.Service.Price)
	require.False(t, order.CreatedAt.IsZero())

	// Later edits to the listing do not rewrite the order snapshot.
	in := testListing()
	in.Title = "Renamed listing"
	in.Price = 999
	_, err = UpdateListing(ctx, st, testSeller.ID, svc.ID, in)
	require.NoError(t, err)

	orders, err := Orders(ctx, st)
	require.NoError(t, err)
	require.Equal(t, svc.Title, orders[0].Service.Title)
	require.Equal(t, svc.Price, orders[0].Service.Price)
}

func TestPlaceOrderRequiresMessage(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	svc := approvedService(t, ctx, st)

	_, err := PlaceOrder(ctx, st, testBuyer, svc.ID, "   ")
	require.ErrorIs(t, err, ErrMessageRequired)
}

func TestPlaceOrderRejectsUnapprovedService(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()

	svc, err := CreateListing(ctx, st, testSeller, testListing())
	require.NoError(t, err)

	_, err = PlaceOrder(ctx, st, testBuyer, svc.ID, "details")
	require.ErrorIs(t, err, ErrServiceNotFound)

	_, err = PlaceOrder(ctx, st, testBuyer, "no-such-id", "details")
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusAccepted, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusAccepted, StatusCompleted, true},
		{StatusAccepted, StatusCancelled, false},
		{StatusAccepted, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusAccepted, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusAccepted, false},
		{StatusCancelled, StatusCompleted, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.ok, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTransitionOrderHappyPath(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	svc := approvedService(t, ctx, st)

	order, err := PlaceOrder(ctx, st, testBuyer, svc.ID, "details")
	require.NoError(t, err)

	accepted, err := TransitionOrder(ctx, st, testSeller.ID, order.ID, StatusAccepted)
	require.NoError(t, err)
	require.Equal(t, StatusAccepted, accepted.Status)

	completed, err := TransitionOrder(ctx, st, testSeller.ID, order.ID, StatusCompleted)
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, completed.Status)

	// Terminal: nothing moves out of completed.
	_, err = TransitionOrder(ctx, st, testSeller.ID, order.ID, StatusCancelled)
	require.ErrorIs(t, err, ErrIllegalTransition)
}

func TestTransitionOrderCancelOnlyFromPending(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	svc := approvedService(t, ctx, st)

	order, err := PlaceOrder(ctx, st, testBuyer, svc.ID, "details")
	require.NoError(t, err)

	_, err = TransitionOrder(ctx, st, testSeller.ID, order.ID, StatusAccepted)
	require.NoError(t, err)

	_, err = TransitionOrder(ctx, st, testSeller.ID, order.ID, StatusCancelled)
	require.ErrorIs(t, err, ErrIllegalTransition)
}

func TestTransitionOrderWrongSeller(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	svc := approvedService(t, ctx, st)

	order, err := PlaceOrder(ctx, st, testBuyer, svc.ID, "details")
	require.NoError(t, err)

	_, err = TransitionOrder(ctx, st, "someone-else", order.ID, StatusAccepted)
	require.ErrorIs(t, err, ErrOrderNotFound)

	// The failed attempt left the order untouched.
	orders, err := Orders(ctx, st)
	require.NoError(t, err)
	require.Equal(t, StatusPending, orders[0].Status)
}

func TestOrdersBySide(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	svc := approvedService(t, ctx, st)

	_, err := PlaceOrder(ctx, st, testBuyer, svc.ID, "first")
	require.NoError(t, err)
	otherBuyer := testBuyer
	otherBuyer.ID = "buyer-2"
	_, err = PlaceOrder(ctx, st, otherBuyer, svc.ID, "second")
	require.NoError(t, err)

	mine, err := OrdersForBuyer(ctx, st, testBuyer.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "first", mine[0].Message)

	sold, err := OrdersForSeller(ctx, st, testSeller.ID)
	require.NoError(t, err)
	require.Len(t, sold, 2)
}
