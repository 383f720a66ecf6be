package auth

import (
	"testing"
	"time"

	"waypoint/config"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		AccessSecret:  "test-access-secret",
		RefreshSecret: "test-refresh-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
		Issuer:        "waypoint-test",
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateAccessToken(cfg, 42, "alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user 42, got %d", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Fatalf("expected alice, got %q", claims.Username)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("expected issuer %q, got %q", cfg.Issuer, claims.Issuer)
	}
}

func TestAccessTokenWrongSecretRejected(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateAccessToken(cfg, 42, "alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	other := testJWTConfig()
	other.AccessSecret = "different-secret"
	if _, err := ParseAccessToken(other, token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAccessTokenExpiryRejected(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessExpiry = -time.Minute
	token, err := GenerateAccessToken(cfg, 42, "alice")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseAccessToken(cfg, token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateRefreshToken(cfg, 7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	userID, err := ParseRefreshToken(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if userID != 7 {
		t.Fatalf("expected user 7, got %d", userID)
	}
}

func TestRefreshTokenNotValidAsAccess(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateRefreshToken(cfg, 7)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseAccessToken(cfg, token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
