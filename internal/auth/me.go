package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/guestpost-hub/guestposthub/internal/store"
)

// GET /auth/me
func (h *Handler) Me(c echo.Context) error {
	u, err := h.Session.Current(c.Request().Context())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not logged in"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load session"})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": u})
}
