package gate

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/sessionkit/pkg/fingerprint"
	"github.com/dmitrymomot/sessionkit/pkg/roles"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// Middleware authenticates every request and injects the validated session
// record into the request context.
//
// Status mapping: no credential is 401, a rejected credential is 403, and a
// store outage is 503. Response bodies stay opaque; they never reveal which
// internal check failed.
func (g *Gate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client, ok := fingerprint.FromContext(r.Context())
		if !ok {
			client = fingerprint.FromRequest(r)
		}

		record, err := g.Authenticate(r.Context(), CredentialFromRequest(r), client)
		if err != nil {
			switch {
			case errors.Is(err, ErrSessionRequired):
				writeError(w, http.StatusUnauthorized, "authentication required")
			case errors.Is(err, ErrSessionInvalid):
				writeError(w, http.StatusForbidden, "session invalid")
			default:
				writeError(w, http.StatusServiceUnavailable, "session store unavailable")
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(session.SetToContext(r.Context(), record)))
	})
}

// RequireRole gates a handler behind a minimum role. It must run inside
// Middleware; without a session record in context the request is rejected
// as unauthenticated.
func RequireRole(min roles.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			record, ok := session.FromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			if err := roles.Require(record.Identity.Role, min); err != nil {
				writeError(w, http.StatusForbidden, "insufficient role")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
