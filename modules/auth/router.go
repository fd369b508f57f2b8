package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/sessionkit/pkg/fingerprint"
	"github.com/dmitrymomot/sessionkit/pkg/gate"
	"github.com/dmitrymomot/sessionkit/pkg/session"
	"github.com/dmitrymomot/sessionkit/pkg/sessionstore"
)

// Router mounts the auth module's HTTP surface:
//
//	POST /login    - credentials in, signed token out
//	POST /logout   - revoke whatever credential is presented
//	GET  /session  - owner and expiry snapshot (authenticated)
//
// Fingerprinting runs for every route; the gate only for the ones that need
// an established session. Logout deliberately skips the gate: it must ack a
// token that is already revoked, expired, or tampered, not answer 403.
func Router(svc *Service, g *gate.Gate) http.Handler {
	r := chi.NewRouter()
	r.Use(fingerprint.Middleware)

	r.Post("/login", svc.handleLogin)
	r.Post("/logout", svc.handleLogout)

	r.Group(func(r chi.Router) {
		r.Use(g.Middleware)
		r.Get("/session", svc.handleSessionInfo)
	})

	return r
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (s *Service) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	client, ok := fingerprint.FromContext(r.Context())
	if !ok {
		client = fingerprint.FromRequest(r)
	}

	token, err := s.Login(r.Context(), req.Username, req.Password, client)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			respondError(w, http.StatusUnauthorized, "invalid credentials")
		case errors.Is(err, sessionstore.ErrUnavailable):
			respondError(w, http.StatusServiceUnavailable, "session store unavailable")
		default:
			respondError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     gate.DefaultCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respondJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// handleLogout acks any presented credential. Revoking a session that is
// already gone is a successful no-op, so the only rejection is the complete
// absence of a credential.
func (s *Service) handleLogout(w http.ResponseWriter, r *http.Request) {
	credential := gate.CredentialFromRequest(r)
	if credential == "" {
		respondError(w, http.StatusForbidden, "invalid or expired session")
		return
	}

	s.Logout(r.Context(), credential)

	http.SetCookie(w, &http.Cookie{
		Name:     gate.DefaultCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (s *Service) handleSessionInfo(w http.ResponseWriter, r *http.Request) {
	record, ok := session.FromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	info, err := s.SessionInfo(r.Context(), gate.CredentialFromRequest(r), record)
	if err != nil {
		switch {
		case errors.Is(err, sessionstore.ErrUnavailable):
			respondError(w, http.StatusServiceUnavailable, "session store unavailable")
		case errors.Is(err, session.ErrSessionNotFound):
			respondError(w, http.StatusForbidden, "session invalid")
		default:
			respondError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	respondJSON(w, http.StatusOK, info)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
