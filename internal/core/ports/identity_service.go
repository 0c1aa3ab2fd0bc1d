package ports

import (
	"context"

	"github.com/OpeyemiAdeniji/fatouapi/internal/core/domain"
)

// RegisterInput carries the full-registration fields.
type RegisterInput struct {
	FirstName   string
	LastName    string
	CompanyName string
	Title       string
	Email       string
	Password    string
}

// WaitlistInput carries the lightweight waiting-list fields. No password.
type WaitlistInput struct {
	FirstName   string
	LastName    string
	Email       string
	CompanyName string
	PhoneNumber string
}

// RegisterResult is the terminal success payload: the public projection plus
// a session token. Warnings carry non-fatal follow-up failures (e.g. the
// welcome notification could not be queued).
type RegisterResult struct {
	User     *domain.User
	Token    string
	Warnings []string
}

// IdentityService orchestrates registration, the waiting-list variant and
// credential login.
type IdentityService interface {
	Register(ctx context.Context, in RegisterInput) (*RegisterResult, error)
	AddToWaitlist(ctx context.Context, in WaitlistInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
