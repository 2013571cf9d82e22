package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/guadalupeabrile/authentic"
)

// TokenVerifier validates a bearer token and returns the embedded identity.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// identityKey is the context key for the verified admin identity.
type identityKey struct{}

// IdentityFromContext returns the identity set by BearerAuth, if any.
func IdentityFromContext(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(identityKey{}).(string)
	return identity, ok
}

// BearerAuth enforces a valid bearer token on every request it wraps. The
// verified identity is stored in the request context for handlers that want
// it. Requests without a well-formed Authorization header short-circuit
// before any handler runs.
func BearerAuth(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				HandleError(w, authentic.ErrUnauthorized)
				return
			}

			identity, err := verifier.Verify(strings.TrimSpace(token))
			if err != nil {
				HandleError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
