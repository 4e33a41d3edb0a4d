package auth

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

var testSecret = []byte("test-secret")

func TestSignVerifyRoundTrip(t *testing.T) {
	tokenStr, err := Sign(testSecret, "507f1f77bcf86cd799439011", "user@example.com", "user")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := Verify(testSecret, tokenStr)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "507f1f77bcf86cd799439011" {
		t.Errorf("userId = %q", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.Role != "user" {
		t.Errorf("role = %q", claims.Role)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tokenStr, err := Sign(testSecret, "id", "a@b.c", "user")
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := Verify([]byte("other-secret"), tokenStr); err == nil {
		t.Fatal("expected verification failure")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	claims := Claims{
		UserID: "id",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := Verify(testSecret, tokenStr); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	if _, err := Verify(testSecret, "not-a-token"); err == nil {
		t.Fatal("expected error")
	}
}

func TestTokenLifetimeIsSevenDays(t *testing.T) {
	tokenStr, _ := Sign(testSecret, "id", "a@b.c", "user")
	claims, err := Verify(testSecret, tokenStr)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	got := time.Unix(claims.ExpiresAt, 0).Sub(time.Unix(claims.IssuedAt, 0))
	if got != TokenLifetime {
		t.Errorf("lifetime = %v, want %v", got, TokenLifetime)
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErrs int
	}{
		{"valid password", "Coffee1!", 0},
		{"too short", "Cf1!", 1},
		{"no letter", "12345678!", 1},
		{"no digit", "Coffeeee!", 1},
		{"no symbol", "Coffee123", 1},
		{"fails everything", "       ", 4},
		{"empty", "", 4},
		{"cyrillic letters count", "Кавоман1!", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePassword(tt.password)
			if len(errs) != tt.wantErrs {
				t.Errorf("ValidatePassword(%q) = %d errors %v, want %d", tt.password, len(errs), errs, tt.wantErrs)
			}
		})
	}
}

func TestNewOpaqueTokenUnique(t *testing.T) {
	a, b := NewOpaqueToken(), NewOpaqueToken()
	if a == "" || a == b {
		t.Errorf("tokens not unique: %q %q", a, b)
	}
}
