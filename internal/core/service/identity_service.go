package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/OpeyemiAdeniji/fatouapi/internal/core/domain"
	"github.com/OpeyemiAdeniji/fatouapi/internal/core/ports"
)

const (
	welcomeTemplate  = "welcome-recruiter"
	waitlistTemplate = "waitlist-confirmation"

	activationValidity = 24 * time.Hour
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// IdentityService orchestrates registration, the waiting-list variant and
// login. Each registration runs as a strict sequence — validate, resolve the
// default role, check uniqueness, hash, persist, issue — aborting on the
// first failure with no partial commit visible to the caller.
type IdentityService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	tokens *TokenService
	queue  ports.NotificationQueue
	log    zerolog.Logger
}

func NewIdentityService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	tokens *TokenService,
	queue ports.NotificationQueue,
	log zerolog.Logger,
) *IdentityService {
	return &IdentityService{users: users, roles: roles, tokens: tokens, queue: queue, log: log}
}

// Register runs the full registration workflow and returns the public
// projection plus a session token.
func (s *IdentityService) Register(ctx context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
	// Validating — fields checked in a fixed order for stable messages.
	if err := requireFields(
		field{"firstName", in.FirstName},
		field{"lastName", in.LastName},
		field{"email", in.Email},
		field{"companyName", in.CompanyName},
		field{"password", in.Password},
	); err != nil {
		return nil, err
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, &domain.ValidationError{Field: "email", Reason: "must be a valid email"}
	}

	role, err := s.resolveDefaultRole(ctx)
	if err != nil {
		return nil, err
	}

	// Advisory uniqueness checks; the store's unique index has the last word.
	if err := s.checkUnique(ctx, in.Email, in.CompanyName); err != nil {
		return nil, err
	}

	if err := domain.ValidatePassword(in.Password); err != nil {
		return nil, err
	}
	hash, err := domain.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CompanyName:  in.CompanyName,
		Title:        in.Title,
		Email:        in.Email,
		PasswordHash: hash,
		IsUser:       true,
		IsActive:     true,
		RoleIDs:      []string{role.ID},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := s.users.Create(ctx, user, &domain.Status{CreatedAt: now, UpdatedAt: now})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return nil, err
	}

	res := &ports.RegisterResult{User: created, Token: token}
	s.notify(res, ports.Notification{
		TemplateID: welcomeTemplate,
		Recipient:  created.Email,
		Data:       map[string]string{"firstName": created.FirstName},
	})
	return res, nil
}

// AddToWaitlist creates a token-less recruiter record. No password is taken
// and no session is issued; the record carries an activation code so a later
// full signup can claim it.
func (s *IdentityService) AddToWaitlist(ctx context.Context, in ports.WaitlistInput) (*domain.User, error) {
	if err := requireFields(
		field{"firstName", in.FirstName},
		field{"lastName", in.LastName},
		field{"email", in.Email},
		field{"companyName", in.CompanyName},
	); err != nil {
		return nil, err
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, &domain.ValidationError{Field: "email", Reason: "must be a valid email"}
	}

	role, err := s.resolveDefaultRole(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnique(ctx, in.Email, in.CompanyName); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		CompanyName:      in.CompanyName,
		PhoneNumber:      in.PhoneNumber,
		IsUser:           true,
		IsActive:         true,
		ActivationCode:   uuid.NewString(),
		ActivationExpiry: now.Add(activationValidity),
		RoleIDs:          []string{role.ID},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	created, err := s.users.Create(ctx, user, &domain.Status{CreatedAt: now, UpdatedAt: now})
	if err != nil {
		return nil, err
	}

	s.notify(nil, ports.Notification{
		TemplateID: waitlistTemplate,
		Recipient:  created.Email,
		Data:       map[string]string{"firstName": created.FirstName},
	})
	return created, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *IdentityService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if user.PasswordHash == "" || !domain.VerifyPassword(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *IdentityService) resolveDefaultRole(ctx context.Context) (*domain.Role, error) {
	role, err := s.roles.FindByName(ctx, domain.RoleUser)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil, domain.ErrRolesNotSeeded
		}
		return nil, err
	}
	return role, nil
}

func (s *IdentityService) checkUnique(ctx context.Context, email, companyName string) error {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return &domain.ConflictError{Field: "email", Value: email}
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	if _, err := s.users.FindByCompanyName(ctx, companyName); err == nil {
		return &domain.ConflictError{Field: "company name", Value: companyName}
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	return nil
}

// notify hands the message to the async queue. A queue failure is surfaced
// as a warning on the result (when there is one) and logged — never fatal,
// never silent.
func (s *IdentityService) notify(res *ports.RegisterResult, n ports.Notification) {
	if s.queue == nil {
		return
	}
	if err := s.queue.Enqueue(n); err != nil {
		s.log.Warn().Err(err).
			Str("template", n.TemplateID).
			Str("recipient", n.Recipient).
			Msg("notification not queued")
		if res != nil {
			res.Warnings = append(res.Warnings, "welcome notification could not be sent")
		}
	}
}

type field struct {
	name  string
	value string
}

func requireFields(fields ...field) error {
	for _, f := range fields {
		if f.value == "" {
			return &domain.ValidationError{Field: f.name}
		}
	}
	return nil
}
