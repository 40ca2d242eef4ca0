package auth

import (
	"testing"
	"time"

	"github.com/davidmokos/coolify/internal/platform/config"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService(config.JWTConfig{
		Secret:         "test-secret",
		AccessTokenTTL: time.Hour,
	})

	token, err := svc.GenerateAccessToken("user_1", "team_1", "dev@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != "user_1" || claims.TeamID != "team_1" || claims.Email != "dev@example.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService(config.JWTConfig{Secret: "secret-a", AccessTokenTTL: time.Hour})
	verifier := NewTokenService(config.JWTConfig{Secret: "secret-b", AccessTokenTTL: time.Hour})

	token, err := issuer.GenerateAccessToken("user_1", "team_1", "dev@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with the wrong secret")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := NewTokenService(config.JWTConfig{Secret: "test-secret", AccessTokenTTL: -time.Minute})

	token, err := svc.GenerateAccessToken("user_1", "team_1", "dev@example.com")
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail for an expired token")
	}
}
