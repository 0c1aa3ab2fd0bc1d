package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/OpeyemiAdeniji/fatouapi/internal/core/domain"
	"github.com/OpeyemiAdeniji/fatouapi/internal/core/service"
)

type stubRoleRepo struct {
	byName map[string]*domain.Role
}

func (r *stubRoleRepo) FindByName(_ context.Context, name string) (*domain.Role, error) {
	if role, ok := r.byName[name]; ok {
		return role, nil
	}
	return nil, domain.ErrRoleNotFound
}

func (r *stubRoleRepo) FindByIDs(context.Context, []string) ([]domain.Role, error) {
	return nil, nil
}

func testAuthorizer() *service.Authorizer {
	return service.NewAuthorizer(&stubRoleRepo{byName: map[string]*domain.Role{
		domain.RoleUser:  {ID: "role_user", Name: domain.RoleUser},
		domain.RoleAdmin: {ID: "role_admin", Name: domain.RoleAdmin},
	}})
}

func runRBAC(t *testing.T, user *domain.User, names ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(userContextKey, user)
	}

	mw := RequireRole(testAuthorizer(), names...)
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestRequireRole_Allows(t *testing.T) {
	user := &domain.User{ID: "u1", RoleIDs: []string{"role_user"}}
	if rec := runRBAC(t, user, domain.RoleUser); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_AllowsAnyOf(t *testing.T) {
	user := &domain.User{ID: "u1", RoleIDs: []string{"role_user"}}
	if rec := runRBAC(t, user, domain.RoleAdmin, domain.RoleUser); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with any-of semantics, got %d", rec.Code)
	}
}

func TestRequireRole_DeniesRoleMismatch(t *testing.T) {
	user := &domain.User{ID: "u1", RoleIDs: []string{"role_user"}}
	if rec := runRBAC(t, user, domain.RoleAdmin); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestRequireRole_DeniesUnauthenticated(t *testing.T) {
	if rec := runRBAC(t, nil, domain.RoleUser); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without identity, got %d", rec.Code)
	}
}

func TestRequireRole_DeniesUnknownRequiredRole(t *testing.T) {
	user := &domain.User{ID: "u1", RoleIDs: []string{"role_user"}}
	if rec := runRBAC(t, user, "ghost"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected fail-closed 401 for unseeded role, got %d", rec.Code)
	}
}
