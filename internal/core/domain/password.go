package domain

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// ValidatePassword enforces the complexity policy before any hashing:
// at least 8 characters with one uppercase letter, one lowercase letter,
// one digit and one symbol.
func ValidatePassword(plain string) error {
	if len(plain) < minPasswordLength {
		return &ValidationError{Field: "password", Reason: "must be at least 8 characters"}
	}

	var upper, lower, digit, symbol bool
	for _, r := range plain {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}
	if !upper || !lower || !digit || !symbol {
		return &ValidationError{
			Field:  "password",
			Reason: "must contain an uppercase letter, a lowercase letter, a digit and a symbol",
		}
	}
	return nil
}

// HashPassword applies a salted adaptive one-way hash to the plaintext.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plain matches the stored hash. bcrypt's
// comparison is constant-time; callers must still mask the distinction
// between wrong-password and unknown-user.
func VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
