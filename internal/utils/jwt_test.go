package utils

import (
	"testing"
)

func TestSignAndParseRoundTrip(t *testing.T) {
	token, err := SignJWT("secret", 7, "google:abc", "admin", 60)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := ParseJWT("secret", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 7 || claims.OpenID != "google:abc" || claims.Role != "admin" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := SignJWT("secret", 7, "google:abc", "admin", 60)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseJWT("other-secret", token); err == nil {
		t.Fatal("expected parse failure with wrong secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := SignJWT("secret", 7, "google:abc", "admin", -1)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseJWT("secret", token); err == nil {
		t.Fatal("expected parse failure for expired token")
	}
}
