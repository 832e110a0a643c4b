package adapters

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.GenerateAccessToken("owner@orderdash.test")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := svc.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}
	if claims.Email != "owner@orderdash.test" {
		t.Errorf("expected email claim, got %s", claims.Email)
	}
	if !claims.ExpiresAt.After(time.Now()) {
		t.Errorf("expected future expiry, got %s", claims.ExpiresAt)
	}
}

func TestValidateAccessTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.GenerateAccessToken("owner@orderdash.test")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := verifier.ValidateAccessToken(token); err == nil {
		t.Fatal("expected validation to fail for a foreign signature")
	}
}

func TestValidateAccessTokenRejectsExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.GenerateAccessToken("owner@orderdash.test")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := svc.ValidateAccessToken(token); err == nil {
		t.Fatal("expected validation to fail for an expired token")
	}
}

func TestValidateAccessTokenRejectsGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	if _, err := svc.ValidateAccessToken("not-a-token"); err == nil {
		t.Fatal("expected validation to fail for malformed input")
	}
}
