// Package auth implements the single-admin token gate: bcrypt credential
// checks and signed, time-limited bearer tokens. There is no session store
// and no revocation; a token stays valid until its expiry elapses.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/guadalupeabrile/authentic"
)

// DefaultTokenTTL is how long an issued token remains valid.
const DefaultTokenTTL = 4 * time.Hour

// Service verifies the one configured administrator identity and signs
// stateless tokens for it.
type Service struct {
	username     string
	passwordHash string
	secret       []byte
	tokenTTL     time.Duration
}

// NewService builds a Service for the configured administrator. The password
// is held only as a bcrypt hash; tokenTTL <= 0 falls back to DefaultTokenTTL.
func NewService(username, passwordHash string, secret []byte, tokenTTL time.Duration) (*Service, error) {
	if username == "" {
		return nil, errors.New("admin username is required")
	}
	if passwordHash == "" {
		return nil, errors.New("admin password hash is required")
	}
	if len(secret) == 0 {
		return nil, errors.New("token signing secret is required")
	}
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &Service{
		username:     username,
		passwordHash: passwordHash,
		secret:       secret,
		tokenTTL:     tokenTTL,
	}, nil
}

// HashPassword generates a bcrypt hash suitable for the admin configuration.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(bytes), nil
}

// Login checks the credentials and issues a signed token on success. Both
// the username comparison and the bcrypt check run in constant time with
// respect to the secret material.
func (s *Service) Login(username, password string) (string, error) {
	usernameMatches := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passwordMatches := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)) == nil
	if !usernameMatches || !passwordMatches {
		return "", authentic.ErrInvalidCredentials
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   s.username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates signature and expiry and returns the embedded identity.
// Expired tokens map to authentic.ErrTokenExpired, everything else invalid
// to authentic.ErrUnauthorized.
func (s *Service) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", authentic.ErrUnauthorized
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("verify token: %w", authentic.ErrTokenExpired)
		}
		return "", fmt.Errorf("verify token: %w", authentic.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("verify token: %w", authentic.ErrUnauthorized)
	}
	return claims.Subject, nil
}

// TokenTTL exposes the configured token lifetime.
func (s *Service) TokenTTL() time.Duration {
	return s.tokenTTL
}
