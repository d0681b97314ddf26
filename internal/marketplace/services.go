package marketplace

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/guestpost-hub/guestposthub/internal/middleware"
	"github.com/guestpost-hub/guestposthub/internal/store"
	"github.com/guestpost-hub/guestposthub/internal/user"
)

// Handler serves the catalog, seller listings and order endpoints.
type Handler struct {
	Store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{Store: s}
}

// ===== Public catalog =====

// GET /marketplace/services
func (h *Handler) ListServices(c echo.Context) error {
	services, err := Services(c.Request().Context(), h.Store)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch services"})
	}

	approved := Approved(services)
	matched := queryFromRequest(c).Apply(approved)

	return c.JSON(http.StatusOK, echo.Map{
		"services": matched,
		"total":    len(approved),
	})
}

// GET /marketplace/services/:id
func (h *Handler) GetService(c echo.Context) error {
	svc, err := ServiceByID(c.Request().Context(), h.Store, c.Param("id"))
	if err != nil || !svc.IsApproved {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"service": svc})
}

// GET /marketplace/overview
// Landing-page payload: a handful of featured listings plus public counters.
func (h *Handler) Overview(c echo.Context) error {
	ctx := c.Request().Context()

	services, err := Services(ctx, h.Store)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch services"})
	}
	users, err := user.All(ctx, h.Store)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch users"})
	}
	orders, err := Orders(ctx, h.Store)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch orders"})
	}

	approved := Approved(services)
	featured := approved
	if len(featured) > 6 {
		featured = featured[:6]
	}

	sellers := 0
	for _, u := range users {
		if u.Role == user.RoleSeller && u.IsApproved {
			sellers++
		}
	}
	completed := 0
	for _, o := range orders {
		if o.Status == StatusCompleted {
			completed++
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"featured":        featured,
		"totalServices":   len(approved),
		"totalSellers":    sellers,
		"completedOrders": completed,
	})
}

// ===== Seller listings =====

// POST /marketplace/services
func (h *Handler) CreateService(c echo.Context) error {
	seller, ok := c.Get(middleware.CtxUser).(user.User)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req ListingInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	svc, err := CreateListing(c.Request().Context(), h.Store, seller, req)
	if err != nil {
		if errors.Is(err, ErrInvalidListing) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and valid price are required"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create service"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"service": svc,
		"message": "Service created. It will be reviewed by an admin before going live.",
	})
}

// PATCH /marketplace/services/:id
func (h *Handler) UpdateService(c echo.Context) error {
	uid, _ := c.Get(middleware.CtxUserID).(string)

	var req ListingInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	svc, err := UpdateListing(c.Request().Context(), h.Store, uid, c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidListing):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and valid price are required"})
		case errors.Is(err, ErrServiceNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found or not yours"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update service"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"service": svc,
		"message": "Service updated. It will need admin approval again.",
	})
}

// DELETE /marketplace/services/:id
func (h *Handler) DeleteService(c echo.Context) error {
	uid, _ := c.Get(middleware.CtxUserID).(string)

	err := DeleteListing(c.Request().Context(), h.Store, uid, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "service not found or not yours"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete service"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "service deleted"})
}

// GET /marketplace/services/me
func (h *Handler) MyServices(c echo.Context) error {
	uid, _ := c.Get(middleware.CtxUserID).(string)

	services, err := Services(c.Request().Context(), h.Store)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch services"})
	}

	mine := make([]Service, 0)
	for _, svc := range services {
		if svc.SellerID == uid {
			mine = append(mine, svc)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"services": mine})
}

func queryFromRequest(c echo.Context) Query {
	return Query{
		Search:   c.QueryParam("q"),
		MinPrice: intParam(c, "min_price"),
		MaxPrice: intParam(c, "max_price"),
		MinDA:    intParam(c, "min_da"),
		MaxDA:    intParam(c, "max_da"),
		MinDR:    intParam(c, "min_dr"),
		MaxDR:    intParam(c, "max_dr"),
		Sort:     c.QueryParam("sort"),
	}
}

// intParam returns nil for absent or unparsable values, leaving the bound
// unconstrained.
func intParam(c echo.Context, name string) *int {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
