package middleware

import (
	"log/slog"
	"net/http"

	"github.com/stayscape/stayscape/internal/api/response"
	"github.com/stayscape/stayscape/internal/user"
)

// RequireAdmin returns middleware that rejects callers whose stored role is
// not admin. It must run after Auth: it trusts the context identity
// absolutely and performs no re-verification of the credential. Every
// invocation is one uncached point read of the user record; an unknown
// email and a known non-admin are rejected identically.
func RequireAdmin(users *user.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			identity := GetIdentity(r.Context())
			if identity == nil {
				response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized Access", requestID)
				return
			}

			isAdmin, err := users.IsAdmin(r.Context(), identity.Email)
			if err != nil {
				slog.Error("role lookup failed", "error", err, "requestId", requestID)
				response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Authorization failed", requestID)
				return
			}

			if !isAdmin {
				response.Err(w, http.StatusForbidden, "FORBIDDEN", "forbidden access", requestID)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
