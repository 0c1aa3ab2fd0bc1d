package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OpeyemiAdeniji/fatouapi/internal/api/middleware"
	"github.com/OpeyemiAdeniji/fatouapi/internal/core/domain"
	"github.com/OpeyemiAdeniji/fatouapi/internal/core/ports"
)

type UserHandler struct {
	users ports.UserRepository
}

func NewUserHandler(users ports.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// Me returns the authenticated identity.
//
// @Summary      Current identity
// @Tags         users
// @Produce      json
// @Success      200  {object}  successEnvelope
// @Failure      401  {object}  map[string]any
// @Router       /v1/auth/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domain.ErrUnauthorized
	}

	return c.JSON(http.StatusOK, successEnvelope{
		Message: "successful",
		Data:    user,
		Status:  http.StatusOK,
	})
}

// List returns all identities. Admin surface.
//
// @Summary      List identities
// @Tags         users
// @Produce      json
// @Success      200  {object}  successEnvelope
// @Failure      401  {object}  map[string]any
// @Router       /v1/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, successEnvelope{
		Message: "successful",
		Data:    users,
		Status:  http.StatusOK,
	})
}
