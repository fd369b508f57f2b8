package gate

import (
	"net/http"
	"strings"
)

// DefaultCookieName is the fallback cookie carrying the signed token for
// browser clients that cannot set an Authorization header.
const DefaultCookieName = "session_token"

const bearerPrefix = "bearer "

// CredentialFromRequest extracts the signed session token from a request:
// the Authorization bearer value when present, otherwise the session cookie.
// Returns "" when neither carries anything.
func CredentialFromRequest(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); len(auth) > len(bearerPrefix) &&
		strings.EqualFold(auth[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(auth[len(bearerPrefix):])
	}

	if cookie, err := r.Cookie(DefaultCookieName); err == nil {
		return cookie.Value
	}

	return ""
}
