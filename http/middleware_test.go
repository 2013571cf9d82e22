package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guadalupeabrile/authentic"
	authhttp "github.com/guadalupeabrile/authentic/http"
)

type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(token string) (string, error) {
	args := m.Called(token)
	return args.String(0), args.Error(1)
}

func TestBearerAuth(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		verifyErr  error
		wantStatus int
		wantNext   bool
	}{
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized},
		{name: "empty token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "rejected token", header: "Bearer bad", verifyErr: authentic.ErrUnauthorized, wantStatus: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer stale", verifyErr: authentic.ErrTokenExpired, wantStatus: http.StatusUnauthorized},
		{name: "accepted token", header: "Bearer good", wantStatus: http.StatusOK, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := new(MockVerifier)
			if tt.verifyErr != nil {
				verifier.On("Verify", mock.Anything).Return("", tt.verifyErr)
			} else {
				verifier.On("Verify", mock.Anything).Return("admin", nil)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			authhttp.BearerAuth(verifier)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}

func TestBearerAuth_SetsIdentity(t *testing.T) {
	verifier := new(MockVerifier)
	verifier.On("Verify", "good").Return("admin", nil)

	var identity string
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok = authhttp.IdentityFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	authhttp.BearerAuth(verifier)(next).ServeHTTP(rec, req)

	require.True(t, ok)
	assert.Equal(t, "admin", identity)
}

func TestIdentityFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := authhttp.IdentityFromContext(req.Context())
	assert.False(t, ok)
}
