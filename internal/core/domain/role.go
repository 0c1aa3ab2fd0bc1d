package domain

// Role is a named permission group. Roles are seeded at startup and
// immutable afterwards; users reference them by id.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
