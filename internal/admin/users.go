package admin

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/guestpost-hub/guestposthub/internal/marketplace"
	"github.com/guestpost-hub/guestposthub/internal/store"
	"github.com/guestpost-hub/guestposthub/internal/user"
)

// Handler serves the administrator endpoints.
type Handler struct {
	Store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{Store: s}
}

// GET /admin/users
// Lists non-admin accounts. Supports q (name/email substring) and
// status=pending|approved filters.
func (h *Handler) ListUsers(c echo.Context) error {
	users, err := user.All(c.Request().Context(), h.Store)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch users"})
	}

	q := strings.ToLower(c.QueryParam("q"))
	status := c.QueryParam("status")

	out := make([]user.User, 0, len(users))
	for _, u := range users {
		if u.Role == user.RoleAdmin {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(u.FullName()), q) &&
			!strings.Contains(strings.ToLower(u.Email), q) {
			continue
		}
		if status == "pending" && u.IsApproved {
			continue
		}
		if status == "approved" && !u.IsApproved {
			continue
		}
		out = append(out, u)
	}
	return c.JSON(http.StatusOK, echo.Map{"users": out})
}

// POST /admin/users/:id/approve
func (h *Handler) ApproveUser(c echo.Context) error {
	return h.setUserApproval(c, true, "user approved")
}

// POST /admin/users/:id/revoke
func (h *Handler) RevokeUser(c echo.Context) error {
	return h.setUserApproval(c, false, "user approval revoked")
}

func (h *Handler) setUserApproval(c echo.Context, approved bool, message string) error {
	userID := c.Param("id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user id required"})
	}

	err := store.Mutate(c.Request().Context(), h.Store, store.KeyUsers, func(users []user.User) ([]user.User, error) {
		for i, u := range users {
			if u.ID == userID {
				users[i].IsApproved = approved
				return users, nil
			}
		}
		return nil, user.ErrNotFound
	})
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update user"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": message})
}

// DELETE /admin/users/:id
// Removes the account and cascades: the user's services, and every order
// where the user is buyer or seller.
func (h *Handler) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user id required"})
	}

	var email string
	err := store.Mutate(ctx, h.Store, store.KeyUsers, func(users []user.User) ([]user.User, error) {
		for i, u := range users {
			if u.ID != userID {
				continue
			}
			if u.Role == user.RoleAdmin {
				return nil, errAdminDelete
			}
			email = u.Email
			return append(users[:i], users[i+1:]...), nil
		}
		return nil, user.ErrNotFound
	})
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		case errors.Is(err, errAdminDelete):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "admin accounts cannot be deleted"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete user"})
		}
	}

	err = store.Mutate(ctx, h.Store, store.KeyServices, func(services []marketplace.Service) ([]marketplace.Service, error) {
		kept := services[:0]
		for _, svc := range services {
			if svc.SellerID != userID {
				kept = append(kept, svc)
			}
		}
		return kept, nil
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not remove user services"})
	}

	err = store.Mutate(ctx, h.Store, store.KeyOrders, func(orders []marketplace.Order) ([]marketplace.Order, error) {
		kept := orders[:0]
		for _, o := range orders {
			if o.BuyerID != userID && o.SellerID != userID {
				kept = append(kept, o)
			}
		}
		return kept, nil
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not remove user orders"})
	}

	// Drop the credential so the email can register again.
	if email != "" {
		creds := map[string]string{}
		if err := h.Store.Load(ctx, store.KeyPasswords, &creds); err == nil {
			delete(creds, email)
			_ = h.Store.Save(ctx, store.KeyPasswords, creds)
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "user deleted"})
}

var errAdminDelete = errors.New("admin accounts cannot be deleted")
