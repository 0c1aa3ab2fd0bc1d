package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/OpeyemiAdeniji/fatouapi/internal/core/domain"
	"github.com/OpeyemiAdeniji/fatouapi/internal/core/ports"
)

type stubIdentityService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.RegisterResult, error)
	waitlistFn func(ctx context.Context, in ports.WaitlistInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubIdentityService) Register(ctx context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
	return s.registerFn(ctx, in)
}

func (s *stubIdentityService) AddToWaitlist(ctx context.Context, in ports.WaitlistInput) (*domain.User, error) {
	return s.waitlistFn(ctx, in)
}

func (s *stubIdentityService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func newTestContext(t *testing.T, body string, target string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubIdentityService{
		registerFn: func(_ context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
			if in.FirstName != "Jane" || in.CompanyName != "Acme" || in.Email != "jane@acme.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.RegisterResult{
				User:  &domain.User{ID: "u1", Email: in.Email},
				Token: "token123",
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t,
		`{"firstName":"Jane","lastName":"Doe","companyName":"Acme","title":"HR Lead","email":"jane@acme.com","password":"Abcdef1!"}`,
		"/v1/auth/register")
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != false {
		t.Fatalf("expected error=false envelope, got %v", resp["error"])
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data in response")
	}
	if data["id"] != "u1" || data["email"] != "jane@acme.com" || data["token"] != "token123" {
		t.Fatalf("unexpected payload: %+v", data)
	}
	if _, leaked := data["password"]; leaked {
		t.Fatalf("password leaked in response")
	}
}

func TestAuthHandler_Register_MissingField(t *testing.T) {
	stub := &stubIdentityService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.RegisterResult, error) {
			t.Fatalf("service must not be reached on invalid payload")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, `{"lastName":"Doe","companyName":"Acme","email":"jane@acme.com","password":"Abcdef1!"}`, "/v1/auth/register")
	err := h.Register(c)

	var ve *domain.ValidationError
	if err == nil || !errors.As(err, &ve) || ve.Field != "firstName" {
		t.Fatalf("expected firstName validation error, got %v", err)
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	stub := &stubIdentityService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.RegisterResult, error) {
			return nil, &domain.ConflictError{Field: "email", Value: "jane@acme.com"}
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t,
		`{"firstName":"Jane","lastName":"Doe","companyName":"Acme","email":"jane@acme.com","password":"Abcdef1!"}`,
		"/v1/auth/register")
	err := h.Register(c)

	var ce *domain.ConflictError
	if err == nil || !errors.As(err, &ce) || ce.Field != "email" {
		t.Fatalf("expected conflict surfaced, got %v", err)
	}
}

func TestAuthHandler_Register_WarningsIncluded(t *testing.T) {
	stub := &stubIdentityService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.RegisterResult, error) {
			return &ports.RegisterResult{
				User:     &domain.User{ID: "u1", Email: "jane@acme.com"},
				Token:    "token123",
				Warnings: []string{"welcome notification could not be sent"},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t,
		`{"firstName":"Jane","lastName":"Doe","companyName":"Acme","email":"jane@acme.com","password":"Abcdef1!"}`,
		"/v1/auth/register")
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	warnings, ok := resp["warnings"].([]any)
	if !ok || len(warnings) != 1 {
		t.Fatalf("expected one warning in envelope, got %v", resp["warnings"])
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubIdentityService{})

	c, _ := newTestContext(t, "not-json", "/v1/auth/register")
	err := h.Register(c)

	var he *echo.HTTPError
	if err == nil || !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %v", err)
	}
}

func TestAuthHandler_Waitlist_Success(t *testing.T) {
	stub := &stubIdentityService{
		waitlistFn: func(_ context.Context, in ports.WaitlistInput) (*domain.User, error) {
			if in.PhoneNumber != "+2348000000000" {
				t.Fatalf("phone number not forwarded: %+v", in)
			}
			return &domain.User{ID: "u2", Email: in.Email}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t,
		`{"firstName":"Sam","lastName":"Okoro","email":"sam@initech.com","companyName":"Initech","phoneNumber":"+2348000000000"}`,
		"/v1/auth/waitlist")
	if err := h.Waitlist(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data, _ := resp["data"].(map[string]any)
	if data["id"] != "u2" || data["email"] != "sam@initech.com" {
		t.Fatalf("unexpected payload: %+v", data)
	}
	if _, hasToken := data["token"]; hasToken {
		t.Fatalf("waitlist response must not carry a token")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubIdentityService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, `{"email":"jane@acme.com","password":"Wrong1!pw"}`, "/v1/auth/login")
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials surfaced, got %v", err)
	}
}
