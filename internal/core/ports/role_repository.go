package ports

import (
	"context"

	"github.com/OpeyemiAdeniji/fatouapi/internal/core/domain"
)

// RoleRepository defines lookups against the seeded role registry.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Role, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Role, error)
}
