package service

import (
	"context"
	"errors"

	"github.com/OpeyemiAdeniji/fatouapi/internal/core/domain"
	"github.com/OpeyemiAdeniji/fatouapi/internal/core/ports"
)

// Authorizer decides allow/deny for a resolved identity against a set of
// required role names. It is a pure function of (user roles, resolved role
// ids) and fails closed on every ambiguous path: nil user, unresolvable role
// name, registry error.
type Authorizer struct {
	roles ports.RoleRepository
}

func NewAuthorizer(roles ports.RoleRepository) *Authorizer {
	return &Authorizer{roles: roles}
}

// Authorize allows the user when the intersection of their role ids and the
// ids resolved from required is non-empty (OR semantics across the required
// names).
func (a *Authorizer) Authorize(ctx context.Context, user *domain.User, required ...string) (bool, error) {
	if user == nil || len(required) == 0 || len(user.RoleIDs) == 0 {
		return false, nil
	}

	allowed := make(map[string]struct{}, len(required))
	for _, name := range required {
		role, err := a.roles.FindByName(ctx, name)
		if err != nil {
			if errors.Is(err, domain.ErrRoleNotFound) {
				// Misconfigured required role: deny, never implicit allow.
				continue
			}
			return false, err
		}
		allowed[role.ID] = struct{}{}
	}

	for _, id := range user.RoleIDs {
		if _, ok := allowed[id]; ok {
			return true, nil
		}
	}
	return false, nil
}
