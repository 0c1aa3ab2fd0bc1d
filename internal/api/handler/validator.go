package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/OpeyemiAdeniji/fatouapi/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface. The first failing field is
// reported as a domain.ValidationError so the error handler renders the same
// envelope as workflow-level validation.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return fieldError(ve[0])
	}
	return err
}

// fieldError converts a single ValidationError into the domain taxonomy.
func fieldError(fe validator.FieldError) error {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return &domain.ValidationError{Field: field}
	case "email":
		return &domain.ValidationError{Field: field, Reason: "must be a valid email"}
	case "min":
		return &domain.ValidationError{Field: field, Reason: fmt.Sprintf("must be at least %s characters", fe.Param())}
	default:
		return &domain.ValidationError{Field: field, Reason: fmt.Sprintf("failed validation (%s)", fe.Tag())}
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
