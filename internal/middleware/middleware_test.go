package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/guestpost-hub/guestposthub/internal/auth"
	"github.com/guestpost-hub/guestposthub/internal/store"
	"github.com/guestpost-hub/guestposthub/internal/user"
)

func newEchoContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestSessionRejectsWhenNobodyLoggedIn(t *testing.T) {
	sess := auth.NewSession(store.New(store.NewMemoryBackend()))

	c, rec := newEchoContext()
	require.NoError(t, Session(sess)(okHandler)(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionPopulatesContext(t *testing.T) {
	st := store.New(store.NewMemoryBackend())
	sess := auth.NewSession(st)

	u := user.User{ID: "seller-1", FirstName: "Sam", Role: user.RoleSeller, IsApproved: true}
	require.NoError(t, st.Save(context.Background(), store.KeyCurrentUser, u))

	c, rec := newEchoContext()
	handler := Session(sess)(func(c echo.Context) error {
		require.Equal(t, "seller-1", c.Get(CtxUserID))
		require.Equal(t, "seller", c.Get(CtxRole))
		got, ok := c.Get(CtxUser).(user.User)
		require.True(t, ok)
		require.Equal(t, "seller-1", got.ID)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRolesBlocksWrongRole(t *testing.T) {
	c, rec := newEchoContext()
	c.Set(CtxRole, string(user.RoleSeller))

	require.NoError(t, RequireRoles(user.RoleBuyer)(okHandler)(c))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	c, rec := newEchoContext()
	c.Set(CtxRole, string(user.RoleSeller))

	require.NoError(t, RequireRoles(user.RoleBuyer, user.RoleSeller)(okHandler)(c))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRolesBlocksMissingRole(t *testing.T) {
	c, rec := newEchoContext()

	require.NoError(t, RequireRoles(user.RoleBuyer)(okHandler)(c))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminGuardBlocksNonAdmins(t *testing.T) {
	c, rec := newEchoContext()
	c.Set(CtxRole, string(user.RoleBuyer))

	require.NoError(t, AdminGuard(okHandler)(c))
	require.Equal(t, http.StatusForbidden, rec.Code)

	c, rec = newEchoContext()
	require.NoError(t, AdminGuard(okHandler)(c))
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminGuardAllowsAdmin(t *testing.T) {
	c, rec := newEchoContext()
	c.Set(CtxRole, string(user.RoleAdmin))

	require.NoError(t, AdminGuard(okHandler)(c))
	require.Equal(t, http.StatusOK, rec.Code)
}
