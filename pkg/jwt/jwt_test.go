package jwt

import (
	"testing"
	"time"

	"medicore/config"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret-key",
		AccessExpiry:  30 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestService()

	token, tokenID, err := svc.GenerateAccessToken(42, "drhouse", "doctor")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected non-empty token ID")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Subject != "drhouse" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "drhouse")
	}
	if claims.Role != "doctor" {
		t.Errorf("Role = %q, want %q", claims.Role, "doctor")
	}
	if claims.TokenType != AccessToken {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, AccessToken)
	}
	if claims.TokenID != tokenID {
		t.Errorf("TokenID = %q, want %q", claims.TokenID, tokenID)
	}
}

func TestGenerateRefreshTokenType(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken(7, "reception1", "receptionist")
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("TokenType = %q, want %q", claims.TokenType, RefreshToken)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestService()
	token, _, err := svc.GenerateAccessToken(1, "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	other := NewJWTService(config.JWTConfig{
		Secret:       "a-different-secret",
		AccessExpiry: time.Minute,
	})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:       "test-secret-key",
		AccessExpiry: -time.Minute,
	})

	token, _, err := svc.GenerateAccessToken(1, "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("expected validation to fail for an expired token")
	}
}

func TestValidateGarbageToken(t *testing.T) {
	svc := newTestService()
	if _, err := svc.ValidateToken("not.a.token"); err == nil {
		t.Error("expected validation to fail for a malformed token")
	}
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := newTestService()

	_, first, err := svc.GenerateAccessToken(1, "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	_, second, err := svc.GenerateAccessToken(1, "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if first == second {
		t.Error("expected distinct token IDs for successive tokens")
	}
}
