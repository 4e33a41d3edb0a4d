// Package auth mints and verifies the bearer tokens used across the API and
// holds the registration password policy.
package auth

import (
	"errors"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
)

// TokenLifetime is how long a login token stays valid. There is no refresh
// flow; re-login is the only renewal path.
const TokenLifetime = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// Sign issues a 7-day HS256 token for the given identity.
func Sign(secret []byte, userID, email, role string) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(TokenLifetime).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Verify validates signature and expiry and returns the embedded identity.
func Verify(secret []byte, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

const passwordSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// ValidatePassword checks the registration policy: at least 8 characters, one
// letter, one digit and one symbol. It returns one message per violated rule.
func ValidatePassword(password string) []string {
	var errs []string

	if utf8.RuneCountInString(password) < 8 {
		errs = append(errs, "Пароль має бути не менше 8 символів")
	}

	hasLetter, hasDigit, hasSymbol := false, false, false
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	if !hasLetter {
		errs = append(errs, "Пароль має містити хоча б одну літеру")
	}
	if !hasDigit {
		errs = append(errs, "Пароль має містити хоча б одну цифру")
	}
	if !hasSymbol {
		errs = append(errs, "Пароль має містити хоча б один спеціальний символ")
	}

	return errs
}

// NewOpaqueToken generates the random tokens used for email verification and
// password reset links.
func NewOpaqueToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
