package domain

import "time"

// Status tracks a recruiter's onboarding progress. One Status is created
// alongside each identity and mutated independently afterwards.
type Status struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"user_id"`
	ProfileCompleted     bool      `json:"profile_completed"`
	CompanyVerified      bool      `json:"company_verified"`
	ApplicationSubmitted bool      `json:"application_submitted"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}
