package handler

// registerRequest is the full-registration body. Field presence is
// re-checked inside the workflow in a fixed order; the validator tags catch
// malformed payloads at the edge.
type registerRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
	Title       string `json:"title"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
}

// waitlistRequest is the lightweight waiting-list body. No password.
type waitlistRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	CompanyName string `json:"companyName" validate:"required"`
	PhoneNumber string `json:"phoneNumber"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// registerData is the terminal success projection: id, email and a session
// token. Never a hash, never internal flags.
type registerData struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

type loginData struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// successEnvelope mirrors the error envelope shape for 2xx responses.
type successEnvelope struct {
	Error    bool     `json:"error"`
	Message  string   `json:"message"`
	Data     any      `json:"data,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Status   int      `json:"status"`
}
