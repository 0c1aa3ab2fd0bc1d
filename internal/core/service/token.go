package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/OpeyemiAdeniji/fatouapi/internal/core/domain"
)

// DefaultTokenTTL matches the reference deployment's session lifetime.
// It is only a fallback; the TTL is a constructor option.
const DefaultTokenTTL = 70 * 24 * time.Hour

// TokenClaims is the payload embedded in a session token.
type TokenClaims struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies stateless HS256 session tokens.
// Verification is self-contained: no store access, signature + expiry only.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the user's id, email and role ids.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := TokenClaims{
		ID:    user.ID,
		Email: user.Email,
		Roles: user.RoleIDs,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
// Any failure — bad signature, malformed payload, expired token, wrong
// algorithm — collapses into domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid || claims.ID == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
