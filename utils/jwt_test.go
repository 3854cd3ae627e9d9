package utils

import (
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func init() {
	os.Setenv("JWT_SECRET", "test-secret-key-for-unit-tests")
}

func TestGenerateToken(t *testing.T) {
	userID := uuid.New()
	email := "tokengen@test.com"
	role := "employee"

	token, err := GenerateToken(userID, email, role, nil)
	if err != nil {
		t.Fatalf("expected no error generating token, got: %v", err)
	}

	if token == "" {
		t.Fatal("expected non-empty token string")
	}

	// Verify the token has three parts (header.payload.signature)
	parts := 0
	for _, c := range token {
		if c == '.' {
			parts++
		}
	}
	if parts != 2 {
		t.Errorf("expected JWT with 2 dots, got %d dots", parts)
	}
}

func TestValidateToken(t *testing.T) {
	userID := uuid.New()
	email := "validate@test.com"
	role := "owner"
	restaurantID := uuid.New()

	token, err := GenerateToken(userID, email, role, &restaurantID)
	if err != nil {
		t.Fatalf("expected no error generating token, got: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("expected no error validating token, got: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("expected user_id %s, got %s", userID, claims.UserID)
	}
	if claims.Email != email {
		t.Errorf("expected email %s, got %s", email, claims.Email)
	}
	if claims.Role != role {
		t.Errorf("expected role %s, got %s", role, claims.Role)
	}
	if claims.RestaurantID == nil || *claims.RestaurantID != restaurantID {
		t.Errorf("expected restaurant_id %s, got %v", restaurantID, claims.RestaurantID)
	}
	if claims.Issuer != "shiftpoint-backend" {
		t.Errorf("expected issuer 'shiftpoint-backend', got %s", claims.Issuer)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	secret := os.Getenv("JWT_SECRET")
	userID := uuid.New()

	claims := Claims{
		UserID: userID,
		Email:  "expired@test.com",
		Role:   "employee",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}

	if _, err := ValidateToken(signed); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "tamper@test.com", "employee", nil)
	if err != nil {
		t.Fatalf("expected no error generating token, got: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ValidateToken(tampered); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestRefreshTokenHasRefreshIssuer(t *testing.T) {
	token, err := GenerateRefreshToken(uuid.New(), "refresh@test.com", "manager", nil)
	if err != nil {
		t.Fatalf("expected no error generating refresh token, got: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("expected no error validating refresh token, got: %v", err)
	}
	if claims.Issuer != "shiftpoint-refresh" {
		t.Errorf("expected issuer 'shiftpoint-refresh', got %s", claims.Issuer)
	}
}
