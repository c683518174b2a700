package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	mockSvc "bazaar/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roleTestContext(t *testing.T) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return e.NewContext(req, httptest.NewRecorder())
}

func TestRequireRole_WrongRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	c := roleTestContext(t)
	c.Set(ContextKeyRole, entity.RoleBuyer)

	next := func(c echo.Context) error { return nil }
	err := m.RequireRole(entity.RoleShop)(next)(c)

	assert.True(t, errors.Is(err, domainerrors.ErrShopRoleRequired))
}

func TestRequireRole_MissingRoleInfo(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	c := roleTestContext(t)

	next := func(c echo.Context) error { return nil }
	err := m.RequireRole(entity.RoleBuyer)(next)(c)

	assert.True(t, errors.Is(err, domainerrors.ErrBuyerRoleRequired))
}

func TestRequireRole_MatchingRolePasses(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	c := roleTestContext(t)
	c.Set(ContextKeyRole, entity.RoleShop)

	called := false
	next := func(c echo.Context) error {
		called = true

		return nil
	}

	require.NoError(t, m.RequireRole(entity.RoleShop)(next)(c))
	assert.True(t, called)
}
