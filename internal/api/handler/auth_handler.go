package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OpeyemiAdeniji/fatouapi/internal/api/metrics"
	"github.com/OpeyemiAdeniji/fatouapi/internal/core/ports"
)

type AuthHandler struct {
	identity ports.IdentityService
}

func NewAuthHandler(identity ports.IdentityService) *AuthHandler {
	return &AuthHandler{identity: identity}
}

// Register creates a recruiter account and issues a session token.
//
// @Summary      Register a recruiter
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  successEnvelope
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	res, err := h.identity.Register(c.Request().Context(), ports.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CompanyName: req.CompanyName,
		Title:       req.Title,
		Email:       req.Email,
		Password:    req.Password,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("full").Inc()
	metrics.TokensIssuedTotal.WithLabelValues("register").Inc()

	return c.JSON(http.StatusOK, successEnvelope{
		Message: "successful",
		Data: registerData{
			ID:    res.User.ID,
			Email: res.User.Email,
			Token: res.Token,
		},
		Warnings: res.Warnings,
		Status:   http.StatusOK,
	})
}

// Waitlist adds a recruiter to the waiting list. No password, no token.
//
// @Summary      Add a recruiter to the waiting list
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      waitlistRequest  true  "Waiting list details"
// @Success      200   {object}  successEnvelope
// @Failure      400   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /v1/auth/waitlist [post]
func (h *AuthHandler) Waitlist(c echo.Context) error {
	var req waitlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	created, err := h.identity.AddToWaitlist(c.Request().Context(), ports.WaitlistInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		CompanyName: req.CompanyName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("waitlist").Inc()

	return c.JSON(http.StatusOK, successEnvelope{
		Message: "successful",
		Data:    created.Public(),
		Status:  http.StatusOK,
	})
}

// Login authenticates a recruiter and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  successEnvelope
// @Failure      401   {object}  map[string]any
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, user, err := h.identity.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	metrics.TokensIssuedTotal.WithLabelValues("login").Inc()

	return c.JSON(http.StatusOK, successEnvelope{
		Message: "successful",
		Data: loginData{
			ID:    user.ID,
			Email: user.Email,
			Token: token,
		},
		Status: http.StatusOK,
	})
}
