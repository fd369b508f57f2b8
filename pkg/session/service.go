package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/fingerprint"
	"github.com/dmitrymomot/sessionkit/pkg/sessionstore"
	"github.com/dmitrymomot/sessionkit/pkg/signer"
)

// Store is the persistence the service needs. *sessionstore.Store satisfies
// it; tests may substitute their own.
type Store interface {
	Create(ctx context.Context, value any, ttl time.Duration) (string, error)
	Get(ctx context.Context, signed string, maxAge time.Duration, dest any) error
	Delete(ctx context.Context, signed string, maxAge time.Duration) error
	Extend(ctx context.Context, signed string, maxAge, ttl time.Duration) error
	TTL(ctx context.Context, signed string, maxAge time.Duration) (time.Duration, error)
}

// Service implements the session lifecycle: issue a signed token bound to a
// client fingerprint, validate and slide it on every read, enforce the hard
// lifetime ceiling, and destroy it on logout or hijack suspicion.
type Service struct {
	store  Store
	signer *signer.Signer
	cfg    Config
	log    *slog.Logger
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for store failures and hijack warnings.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a session Service. The config is validated up front so
// a misconfigured deployment fails at startup, not on the first login.
func NewService(store Store, sig *signer.Signer, cfg Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Service{
		store:  store,
		signer: sig,
		cfg:    cfg,
		log:    slog.Default(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Create issues a new session for identity bound to the given client and
// returns the signed token. The record starts with the full rolling TTL.
func (s *Service) Create(ctx context.Context, identity Identity, client fingerprint.Fingerprint) (string, error) {
	record := Record{
		Identity:  identity,
		CreatedAt: float64(s.now().UnixNano()) / float64(time.Second),
		Client:    client,
	}

	token, err := s.store.Create(ctx, record, s.cfg.RollingTTL)
	if err != nil {
		return "", err
	}

	return s.signer.Sign(token), nil
}

// Load validates a signed token against the presenting client and returns
// the session record, sliding the expiry out to the full rolling window.
//
// Rejections are total: a session past its hard lifetime or presented by a
// non-matching client is deleted before ErrSessionNotFound is returned.
// Only sessionstore.ErrUnavailable escapes with its own identity, since it
// says nothing about the session itself.
func (s *Service) Load(ctx context.Context, signed string, client fingerprint.Fingerprint) (Record, error) {
	var record Record
	if err := s.store.Get(ctx, signed, s.cfg.MaxLifetime, &record); err != nil {
		if errors.Is(err, sessionstore.ErrUnavailable) {
			return Record{}, err
		}
		return Record{}, ErrSessionNotFound
	}

	// The signature timestamp already bounds the token's age, but the stored
	// creation time is authoritative for the lifetime ceiling.
	if s.now().Sub(record.IssuedAt()) > s.cfg.MaxLifetime {
		s.destroy(ctx, signed)
		return Record{}, ErrSessionNotFound
	}

	if !record.Client.Equal(client) {
		s.log.WarnContext(ctx, "session fingerprint mismatch, destroying session",
			slog.String("username", record.Identity.Username),
			slog.String("expected", record.Client.Canonical()),
			slog.String("presented", client.Canonical()),
		)
		s.destroy(ctx, signed)
		return Record{}, ErrSessionNotFound
	}

	if err := s.store.Extend(ctx, signed, s.cfg.MaxLifetime, s.cfg.RollingTTL); err != nil {
		if errors.Is(err, sessionstore.ErrUnavailable) {
			return Record{}, err
		}
		// Lost a race with expiry or revocation between Get and Extend.
		return Record{}, ErrSessionNotFound
	}

	return record, nil
}

// Revoke destroys the session behind a signed token. It never fails from
// the caller's point of view: logout must succeed even when the token is
// garbage or the store is down, so errors are only logged.
func (s *Service) Revoke(ctx context.Context, signed string) {
	if err := s.store.Delete(ctx, signed, s.cfg.MaxLifetime); err != nil {
		s.log.ErrorContext(ctx, "failed to delete session on revoke",
			slog.Any("error", err),
		)
	}
}

// Health returns the expiry snapshot of a session without sliding its TTL.
// The caller is expected to have validated the session via Load already.
func (s *Service) Health(ctx context.Context, signed string) (Health, error) {
	var record Record
	if err := s.store.Get(ctx, signed, s.cfg.MaxLifetime, &record); err != nil {
		if errors.Is(err, sessionstore.ErrUnavailable) {
			return Health{}, err
		}
		return Health{}, ErrSessionNotFound
	}

	ttl, err := s.store.TTL(ctx, signed, s.cfg.MaxLifetime)
	if err != nil {
		if errors.Is(err, sessionstore.ErrUnavailable) {
			return Health{}, err
		}
		return Health{}, ErrSessionNotFound
	}

	issued := record.IssuedAt()
	return Health{
		IssuedAt:     issued,
		MaxAgeAt:     issued.Add(s.cfg.MaxLifetime),
		NextExpiryAt: s.now().Add(ttl),
	}, nil
}

// destroy removes a rejected session, logging rather than failing when the
// store refuses. The caller returns ErrSessionNotFound either way.
func (s *Service) destroy(ctx context.Context, signed string) {
	if err := s.store.Delete(ctx, signed, s.cfg.MaxLifetime); err != nil {
		s.log.ErrorContext(ctx, "failed to delete rejected session",
			slog.Any("error", err),
		)
	}
}
