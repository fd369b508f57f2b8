package gate

import (
	"context"
	"errors"

	"github.com/dmitrymomot/sessionkit/pkg/fingerprint"
	"github.com/dmitrymomot/sessionkit/pkg/session"
	"github.com/dmitrymomot/sessionkit/pkg/sessionstore"
)

// SessionLoader validates a signed token for a presenting client.
// *session.Service satisfies it.
type SessionLoader interface {
	Load(ctx context.Context, signed string, client fingerprint.Fingerprint) (session.Record, error)
}

// Gate is the authentication boundary. It distinguishes exactly two failure
// states: nothing presented (ErrSessionRequired) and presented but rejected
// (ErrSessionInvalid). Everything the session layer knows about WHY a token
// was rejected stays behind the gate.
type Gate struct {
	sessions SessionLoader
}

// New creates a Gate over the given session loader.
func New(sessions SessionLoader) *Gate {
	return &Gate{sessions: sessions}
}

// Authenticate resolves a credential into a session record.
//
// Store unavailability passes through untouched: the caller must be able to
// answer 503 rather than treating an outage as a failed login.
func (g *Gate) Authenticate(ctx context.Context, credential string, client fingerprint.Fingerprint) (session.Record, error) {
	if credential == "" {
		return session.Record{}, ErrSessionRequired
	}

	record, err := g.sessions.Load(ctx, credential, client)
	if err != nil {
		if errors.Is(err, sessionstore.ErrUnavailable) {
			return session.Record{}, err
		}
		return session.Record{}, ErrSessionInvalid
	}

	return record, nil
}
