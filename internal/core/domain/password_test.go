package domain

import (
	"errors"
	"testing"
)

func TestValidatePassword_Accepts(t *testing.T) {
	for _, pw := range []string{"Abcdef1!", "Str0ng#Pass", "xY9$aaaa"} {
		if err := ValidatePassword(pw); err != nil {
			t.Fatalf("expected %q to pass policy, got %v", pw, err)
		}
	}
}

func TestValidatePassword_Rejects(t *testing.T) {
	cases := map[string]string{
		"short":        "Ab1!x",
		"no uppercase": "abcdef1!",
		"no lowercase": "ABCDEF1!",
		"no digit":     "Abcdefg!",
		"no symbol":    "Abcdefg1",
	}
	for name, pw := range cases {
		err := ValidatePassword(pw)
		if err == nil {
			t.Fatalf("%s: expected policy violation for %q", name, pw)
		}
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != "password" {
			t.Fatalf("%s: expected ValidationError on password, got %v", name, err)
		}
	}
}

func TestPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("Abcdef1!")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "Abcdef1!" {
		t.Fatalf("hash equals plaintext")
	}
	if !VerifyPassword("Abcdef1!", hash) {
		t.Fatalf("expected hash to verify against original password")
	}
	if VerifyPassword("Abcdef1?", hash) {
		t.Fatalf("expected one-character difference to fail verification")
	}
}
