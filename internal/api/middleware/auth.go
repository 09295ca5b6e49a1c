package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/stayscape/stayscape/internal/api/response"
	"github.com/stayscape/stayscape/internal/token"
)

const identityKey contextKey = "identity"

// Auth is middleware that verifies the bearer credential in the
// Authorization header. A missing header is rejected without attempting
// verification. The header is split on whitespace and the second token is
// used as the credential; the scheme name itself is not validated. All
// verification failures collapse into the same 401 signal so callers cannot
// distinguish a forged token from an expired one.
func Auth(tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			header := r.Header.Get("Authorization")
			if header == "" {
				response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized Access", requestID)
				return
			}

			parts := strings.Fields(header)
			if len(parts) < 2 {
				response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized Access", requestID)
				return
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized Access", requestID)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity retrieves the verified Identity from the request context.
func GetIdentity(ctx context.Context) *token.Identity {
	if id, ok := ctx.Value(identityKey).(*token.Identity); ok {
		return id
	}
	return nil
}
