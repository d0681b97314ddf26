package marketplace

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/guestpost-hub/guestposthub/internal/middleware"
	"github.com/guestpost-hub/guestposthub/internal/user"
)

// =========================
// CreateOrder - Buyer places order
// =========================
func (h *Handler) CreateOrder(c echo.Context) error {
	buyer, ok := c.Get(middleware.CtxUser).(user.User)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req struct {
		ServiceID string `json:"serviceId"`
		Message   string `json:"message"`
	}
	if err := c.Bind(&req); err != nil || req.ServiceID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid serviceId"})
	}

	order, err := PlaceOrder(c.Request().Context(), h.Store, buyer, req.ServiceID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, ErrMessageRequired):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "please provide details about your requirements"})
		case errors.Is(err, ErrServiceNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create order"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"order":   order,
		"message": "Order placed successfully. The seller will contact you soon.",
	})
}

// =========================
// MyOrders - Fetch the requester's orders for their side of the market
// =========================
func (h *Handler) MyOrders(c echo.Context) error {
	uid, _ := c.Get(middleware.CtxUserID).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	isSeller := user.Role(role) == user.RoleSeller

	var (
		orders []Order
		err    error
	)
	if isSeller {
		orders, err = OrdersForSeller(c.Request().Context(), h.Store, uid)
	} else {
		orders, err = OrdersForBuyer(c.Request().Context(), h.Store, uid)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to fetch orders"})
	}

	resp := echo.Map{}
	if isSeller {
		// Dashboard counters cover the whole book, not the current tab.
		completed, earnings := sellerStats(orders)
		resp["completedOrders"] = completed
		resp["totalEarnings"] = earnings
	}

	// Dashboard tabs filter by status.
	if status := Status(c.QueryParam("status")); status != "" {
		if !status.Valid() {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown status"})
		}
		filtered := make([]Order, 0, len(orders))
		for _, o := range orders {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	resp["orders"] = orders
	return c.JSON(http.StatusOK, resp)
}

// sellerStats sums the terms frozen into completed order snapshots.
func sellerStats(orders []Order) (completed, earnings int) {
	for _, o := range orders {
		if o.Status == StatusCompleted {
			completed++
			earnings += o.Service.Price
		}
	}
	return completed, earnings
}

// =========================
// AcceptOrder - Seller accepts a pending order
// =========================
func (h *Handler) AcceptOrder(c echo.Context) error {
	return h.transition(c, StatusAccepted, "Order accepted")
}

// =========================
// CompleteOrder - Seller marks an accepted order completed
// =========================
func (h *Handler) CompleteOrder(c echo.Context) error {
	return h.transition(c, StatusCompleted, "Order completed")
}

// =========================
// CancelOrder - Seller cancels a pending order
// =========================
func (h *Handler) CancelOrder(c echo.Context) error {
	return h.transition(c, StatusCancelled, "Order cancelled")
}

func (h *Handler) transition(c echo.Context, next Status, message string) error {
	uid, _ := c.Get(middleware.CtxUserID).(string)

	orderID := c.Param("id")
	if orderID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing order id in URL"})
	}

	order, err := TransitionOrder(c.Request().Context(), h.Store, uid, orderID, next)
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found or not yours"})
		case errors.Is(err, ErrIllegalTransition):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "order cannot move to " + string(next)})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to update order status"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"order": order, "message": message})
}
