package ports

import (
	"context"

	"github.com/OpeyemiAdeniji/fatouapi/internal/core/domain"
)

// UserRepository defines the persistence contract for identities. Uniqueness
// of email and company name is enforced by the store itself; Create returns a
// domain.ConflictError on a unique-constraint violation. Implementations
// bound every call with a timeout and surface domain.ErrStoreTimeout.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByCompanyName(ctx context.Context, name string) (*domain.User, error)

	// Create persists the identity together with its initial Status record.
	// On failure no identity record remains visible.
	Create(ctx context.Context, user *domain.User, status *domain.Status) (*domain.User, error)

	Save(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
}
