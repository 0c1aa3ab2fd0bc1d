package domain

import "time"

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// User models a recruiter identity. PasswordHash is never serialized;
// waitlist records carry no hash at all.
type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	CompanyName  string `json:"company_name"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	Title        string `json:"title,omitempty"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	IsSuper      bool   `json:"is_super"`
	IsAdmin      bool   `json:"is_admin"`
	IsUser       bool   `json:"is_user"`
	IsActive     bool   `json:"is_active"`
	IsActivated  bool   `json:"is_activated"`

	// ActivationCode links a waitlist record to a later full signup.
	ActivationCode   string    `json:"-"`
	ActivationExpiry time.Time `json:"-"`

	RoleIDs  []string `json:"roles"`
	StatusID string   `json:"status_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PublicUser is the minimal projection returned to clients after
// registration. No flags, no hash.
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Public returns the client-safe projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email}
}

// HasRoleID reports whether the user carries the given role id.
func (u *User) HasRoleID(id string) bool {
	for _, r := range u.RoleIDs {
		if r == id {
			return true
		}
	}
	return false
}
