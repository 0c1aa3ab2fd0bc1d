package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/OpeyemiAdeniji/fatouapi/internal/core/domain"
	"github.com/OpeyemiAdeniji/fatouapi/internal/core/ports"
	"github.com/OpeyemiAdeniji/fatouapi/internal/core/service"
)

// SessionCookie is the cookie fallback for clients that do not send an
// Authorization header.
const SessionCookie = "token"

const userContextKey = "auth.user"

// Every authentication failure returns this same message: the caller must
// not learn whether the token was missing, malformed, expired or simply
// resolved to nobody.
const notAuthorizedMessage = "user not authorized to access this route"

// Authenticate verifies the bearer token (header or cookie), re-resolves the
// live identity record — roles and flags may have changed since issuance —
// and injects it into the request context.
func Authenticate(tokens *service.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFromRequest(c)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, notAuthorizedMessage)
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, notAuthorizedMessage)
			}

			user, err := users.FindByID(c.Request().Context(), claims.ID)
			if err != nil || !user.IsActive {
				return echo.NewHTTPError(http.StatusUnauthorized, notAuthorizedMessage)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the identity injected by Authenticate, or nil when the
// request is unauthenticated.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}

// tokenFromRequest accepts either transport channel; callers never know
// which one was used.
func tokenFromRequest(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}

	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie.Value
	}
	return ""
}
