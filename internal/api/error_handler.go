package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/OpeyemiAdeniji/fatouapi/internal/core/domain"
)

// errorEnvelope is the canonical error payload for all API errors.
type errorEnvelope struct {
	Error   bool     `json:"error"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
	Status  int      `json:"status"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the domain error taxonomy to deterministic HTTP status codes.
//   - Collapses every authentication/authorization failure into one generic
//     401 payload so the root cause never leaks.
//   - Logs unexpected errors internally without exposing details.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, details := resolveError(err, log, c)
		if details == nil {
			details = []string{}
		}
		_ = c.JSON(code, errorEnvelope{
			Error:   true,
			Message: msg,
			Errors:  details,
			Status:  code,
		})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, []string) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, "Error!", []string{ve.Error()}
	}

	var ce *domain.ConflictError
	if errors.As(err, &ce) {
		return http.StatusBadRequest, "Error!", []string{ce.Error()}
	}

	switch {
	case errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid token", []string{domain.ErrUnauthorized.Error()}
	case errors.Is(err, domain.ErrRolesNotSeeded):
		log.Error().Err(err).Msg("role registry not seeded")
		return http.StatusInternalServerError, "An error occurred. Please contact support.", []string{domain.ErrRolesNotSeeded.Error()}
	case errors.Is(err, domain.ErrStoreTimeout):
		return http.StatusServiceUnavailable, "Service temporarily unavailable", []string{domain.ErrStoreTimeout.Error()}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "Error!", []string{domain.ErrUserNotFound.Error()}
	}

	// Echo's own errors (bind failures, 404 from router, auth middleware).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := fmt.Sprintf("%v", he.Message)
		if he.Code == http.StatusUnauthorized {
			// Uniform payload regardless of which guard rejected.
			return http.StatusUnauthorized, "Invalid token", []string{domain.ErrUnauthorized.Error()}
		}
		return he.Code, msg, []string{msg}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error", nil
}
