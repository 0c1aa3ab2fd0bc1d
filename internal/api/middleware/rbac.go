package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OpeyemiAdeniji/fatouapi/internal/api/metrics"
	"github.com/OpeyemiAdeniji/fatouapi/internal/core/service"
)

// RequireRole gates a route on role membership. The identity must already be
// resolved by Authenticate; the authorizer compares its role ids against the
// ids resolved from names (any match allows). Denials reuse the generic
// unauthorized message so role mismatch is indistinguishable from a missing
// or invalid token.
func RequireRole(authz *service.Authorizer, names ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := authz.Authorize(c.Request().Context(), CurrentUser(c), names...)
			if err != nil || !allowed {
				metrics.AuthDenialsTotal.WithLabelValues("role").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, notAuthorizedMessage)
			}
			return next(c)
		}
	}
}
