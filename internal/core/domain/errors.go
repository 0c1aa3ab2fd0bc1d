package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound is returned by repositories when no identity matches.
	ErrUserNotFound = errors.New("user not found")

	// ErrRoleNotFound is returned by the role registry for unknown names/ids.
	ErrRoleNotFound = errors.New("role not found")

	// ErrRolesNotSeeded signals missing seed data: the default role could not
	// be resolved. Operator-fixable, never retried.
	ErrRolesNotSeeded = errors.New("roles not defined")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two are indistinguishable at the boundary.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken covers signature mismatch, malformed payload and expiry.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnauthorized is the uniform authorization failure. The message is
	// deliberately generic regardless of root cause.
	ErrUnauthorized = errors.New("user not authorized to access this route")

	// ErrStoreTimeout is surfaced when a store access exceeds its deadline.
	ErrStoreTimeout = errors.New("data store timed out")
)

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s is required", e.Field)
}

// ConflictError reports a uniqueness violation on Field. The store's unique
// index is the authority; a ConflictError raised at write time wins over any
// earlier read-based check.
type ConflictError struct {
	Field string
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists, use another %s", e.Field, e.Field)
}
