package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guadalupeabrile/authentic"
	"github.com/guadalupeabrile/authentic/auth"
)

const testSecret = "a-test-secret-that-is-long-enough"

func newService(t *testing.T) *auth.Service {
	t.Helper()
	hash, err := auth.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	service, err := auth.NewService("admin", hash, []byte(testSecret), time.Hour)
	require.NoError(t, err)
	return service
}

func TestNewService_Validation(t *testing.T) {
	hash, err := auth.HashPassword("pw")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		hash     string
		secret   []byte
	}{
		{name: "missing username", username: "", hash: hash, secret: []byte(testSecret)},
		{name: "missing password hash", username: "admin", hash: "", secret: []byte(testSecret)},
		{name: "missing secret", username: "admin", hash: hash, secret: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.NewService(tt.username, tt.hash, tt.secret, time.Hour)
			assert.Error(t, err)
		})
	}
}

func TestNewService_DefaultTTL(t *testing.T) {
	hash, err := auth.HashPassword("pw")
	require.NoError(t, err)

	service, err := auth.NewService("admin", hash, []byte(testSecret), 0)
	require.NoError(t, err)
	assert.Equal(t, auth.DefaultTokenTTL, service.TokenTTL())
}

func TestLoginThenVerify(t *testing.T) {
	service := newService(t)

	token, err := service.Login("admin", "correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := service.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", identity)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	service := newService(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "admin", password: "not the password"},
		{name: "wrong username", username: "root", password: "correct horse battery staple"},
		{name: "both empty", username: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(tt.username, tt.password)
			assert.ErrorIs(t, err, authentic.ErrInvalidCredentials)
		})
	}
}

func TestVerify_RejectsGarbage(t *testing.T) {
	service := newService(t)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := service.Verify(token)
		assert.ErrorIs(t, err, authentic.ErrUnauthorized)
	}
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	service := newService(t)

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, verifyErr := service.Verify(expired)
	assert.ErrorIs(t, verifyErr, authentic.ErrTokenExpired)
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	service := newService(t)

	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, verifyErr := service.Verify(forged)
	assert.ErrorIs(t, verifyErr, authentic.ErrUnauthorized)
}

func TestVerify_RejectsUnsignedToken(t *testing.T) {
	service := newService(t)

	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, verifyErr := service.Verify(unsigned)
	assert.ErrorIs(t, verifyErr, authentic.ErrUnauthorized)
}
