package admin

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/guestpost-hub/guestposthub/internal/marketplace"
	"github.com/guestpost-hub/guestposthub/internal/store"
)

// GET /admin/services
// Lists every service, approved or not. Supports q (title/seller substring)
// and status=pending|approved filters.
func (h *Handler) ListServices(c echo.Context) error {
	services, err := marketplace.Services(c.Request().Context(), h.Store)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch services"})
	}

	q := strings.ToLower(c.QueryParam("q"))
	status := c.QueryParam("status")

	out := make([]marketplace.Service, 0, len(services))
	for _, svc := range services {
		if q != "" &&
			!strings.Contains(strings.ToLower(svc.Title), q) &&
			!strings.Contains(strings.ToLower(svc.SellerName), q) {
			continue
		}
		if status == "pending" && svc.IsApproved {
			continue
		}
		if status == "approved" && !svc.IsApproved {
			continue
		}
		out = append(out, svc)
	}
	return c.JSON(http.StatusOK, echo.Map{"services": out})
}

// POST /admin/services/:id/approve
func (h *Handler) ApproveService(c echo.Context) error {
	return h.setServiceApproval(c, true, "service approved")
}

// POST /admin/services/:id/reject
func (h *Handler) RejectService(c echo.Context) error {
	return h.setServiceApproval(c, false, "service rejected")
}

func (h *Handler) setServiceApproval(c echo.Context, approved bool, message string) error {
	serviceID := c.Param("id")
	if serviceID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "service id required"})
	}

	err := store.Mutate(c.Request().Context(), h.Store, store.KeyServices, func(services []marketplace.Service) ([]marketplace.Service, error) {
		for i, svc := range services {
			if svc.ID == serviceID {
				services[i].IsApproved = approved
				return services, nil
			}
		}
		return nil, marketplace.ErrServiceNotFound
	})
	if err != nil {
		if errors.Is(err, marketplace.ErrServiceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update service"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": message})
}

// DELETE /admin/services/:id
func (h *Handler) DeleteService(c echo.Context) error {
	serviceID := c.Param("id")
	if serviceID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "service id required"})
	}

	err := store.Mutate(c.Request().Context(), h.Store, store.KeyServices, func(services []marketplace.Service) ([]marketplace.Service, error) {
		for i, svc := range services {
			if svc.ID == serviceID {
				return append(services[:i], services[i+1:]...), nil
			}
		}
		return nil, marketplace.ErrServiceNotFound
	})
	if err != nil {
		if errors.Is(err, marketplace.ErrServiceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete service"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "service deleted"})
}

// GET /admin/orders
func (h *Handler) ListOrders(c echo.Context) error {
	orders, err := marketplace.Orders(c.Request().Context(), h.Store)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch orders"})
	}
	return c.JSON(http.StatusOK, echo.Map{"orders": orders})
}
