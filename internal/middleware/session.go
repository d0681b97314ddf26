package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/guestpost-hub/guestposthub/internal/auth"
	"github.com/guestpost-hub/guestposthub/internal/store"
)

// Context keys populated by Session.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
	CtxUser   = "current_user"
)

// Session resolves the persisted current-user record and rejects requests
// when nobody is logged in. Identity lives in the store, not in a token;
// at most one account is logged in at a time.
func Session(sess *auth.Session) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, err := sess.Current(c.Request().Context())
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "login required"})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to load session"})
			}
			c.Set(CtxUserID, u.ID)
			c.Set(CtxRole, string(u.Role))
			c.Set(CtxUser, u)
			return next(c)
		}
	}
}
