package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/xomware/xomware-backend/pkg/config"
)

func jwtConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "xomware-test",
		ExpirationMinutes: 15,
	}
}

func TestMintAndParseRoundTrip(t *testing.T) {
	userID := uuid.New()
	signed, err := MintAccessToken(jwtConfig(), time.Now(), AccessTokenPayload{
		UserID: userID,
		Role:   RoleMember,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseAccessToken(jwtConfig(), signed)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user %s got %s", userID, claims.UserID)
	}
	if claims.Role != RoleMember {
		t.Fatalf("unexpected role %s", claims.Role)
	}
	if claims.ID == "" {
		t.Fatal("expected generated jti")
	}
}

func TestMintRejectsInvalidRole(t *testing.T) {
	_, err := MintAccessToken(jwtConfig(), time.Now(), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   Role("superuser"),
	})
	if err == nil {
		t.Fatal("expected error for invalid role")
	}
}

func TestMintRequiresConfig(t *testing.T) {
	cfg := jwtConfig()
	cfg.Secret = ""
	if _, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserID: uuid.New(), Role: RoleMember}); err == nil {
		t.Fatal("expected error without secret")
	}

	cfg = jwtConfig()
	cfg.ExpirationMinutes = 0
	if _, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{UserID: uuid.New(), Role: RoleMember}); err == nil {
		t.Fatal("expected error without expiration")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	signed, err := MintAccessToken(jwtConfig(), time.Now().Add(-time.Hour), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   RoleMember,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := ParseAccessToken(jwtConfig(), signed); err == nil {
		t.Fatal("expected expired token to fail validation")
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	signed, err := MintAccessToken(jwtConfig(), time.Now(), AccessTokenPayload{
		UserID: uuid.New(),
		Role:   RoleAdmin,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	other := jwtConfig()
	other.Issuer = "someone-else"
	if _, err := ParseAccessToken(other, signed); err == nil {
		t.Fatal("expected issuer mismatch to fail")
	}
}
