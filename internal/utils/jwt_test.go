package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessToken(t *testing.T) {
	tok, err := NewAccessToken("secret", "frontdesk", RoleStaff, 5)
	if err != nil {
		t.Fatalf("new access token: %v", err)
	}

	parsed, err := jwt.Parse(tok.Token, func(*jwt.Token) (interface{}, error) { return []byte("secret"), nil })
	if err != nil || !parsed.Valid {
		t.Fatalf("token did not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != "frontdesk" || claims["role"] != RoleStaff {
		t.Fatalf("unexpected claims: %v", claims)
	}
	if tok.Exp.IsZero() {
		t.Fatal("expected expiry to be set")
	}
}

func TestNewAccessTokenRejectsBadInput(t *testing.T) {
	if _, err := NewAccessToken("", "frontdesk", RoleStaff, 5); err == nil {
		t.Fatal("expected error for empty secret")
	}
	if _, err := NewAccessToken("secret", "frontdesk", RoleStaff, 0); err == nil {
		t.Fatal("expected error for zero ttl")
	}
}
