package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/guestpost-hub/guestposthub/internal/marketplace"
	"github.com/guestpost-hub/guestposthub/internal/user"
)

// GET /admin/stats
func (h *Handler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := user.All(ctx, h.Store)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch users"})
	}
	services, err := marketplace.Services(ctx, h.Store)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch services"})
	}
	orders, err := marketplace.Orders(ctx, h.Store)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch orders"})
	}

	var buyers, sellers, pendingSellers int
	for _, u := range users {
		switch u.Role {
		case user.RoleBuyer:
			buyers++
		case user.RoleSeller:
			sellers++
			if !u.IsApproved {
				pendingSellers++
			}
		}
	}

	var approvedServices int
	for _, svc := range services {
		if svc.IsApproved {
			approvedServices++
		}
	}

	var pendingOrders, completedOrders, revenue int
	for _, o := range orders {
		switch o.Status {
		case marketplace.StatusPending:
			pendingOrders++
		case marketplace.StatusCompleted:
			completedOrders++
			// Revenue counts the price frozen at order time.
			revenue += o.Service.Price
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"totalUsers":       buyers + sellers,
		"totalBuyers":      buyers,
		"totalSellers":     sellers,
		"pendingSellers":   pendingSellers,
		"totalServices":    len(services),
		"approvedServices": approvedServices,
		"pendingServices":  len(services) - approvedServices,
		"totalOrders":      len(orders),
		"pendingOrders":    pendingOrders,
		"completedOrders":  completedOrders,
		"totalRevenue":     revenue,
	})
}
