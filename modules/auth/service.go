package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/sessionkit/pkg/fingerprint"
	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/session"
	"github.com/dmitrymomot/sessionkit/pkg/signer"
)

// Service ties user storage, password verification, and the session
// lifecycle into the login/logout/session-info surface.
type Service struct {
	users    UserStore
	hasher   *signer.Hasher
	sessions *session.Service
	log      *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.log = log
	}
}

// NewService creates the auth service.
func NewService(users UserStore, hasher *signer.Hasher, sessions *session.Service, opts ...ServiceOption) *Service {
	s := &Service{
		users:    users,
		hasher:   hasher,
		sessions: sessions,
		log:      slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Login verifies credentials and issues a signed session token bound to the
// presenting client. Unknown usernames and wrong passwords are
// indistinguishable from the outside.
func (s *Service) Login(ctx context.Context, username, password string, client fingerprint.Fingerprint) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.log.WarnContext(ctx, "failed login attempt",
			logger.Username(username),
			logger.ClientIP(client.IPAddress),
		)
		return "", ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, session.Identity{
		Username: user.Username,
		Role:     user.Role,
	}, client)
	if err != nil {
		return "", err
	}

	s.log.InfoContext(ctx, "user logged in",
		logger.Username(user.Username),
		logger.Role(user.Role),
		logger.ClientIP(client.IPAddress),
	)

	return token, nil
}

// Logout revokes the session behind the token. Always succeeds.
func (s *Service) Logout(ctx context.Context, signed string) {
	s.sessions.Revoke(ctx, signed)
}

// SessionInfo describes a live session to its owner.
type SessionInfo struct {
	Username string         `json:"username"`
	Role     string         `json:"role"`
	Health   session.Health `json:"health"`
}

// SessionInfo returns the owner and expiry snapshot for an already validated
// session. The record comes from the gate middleware; only the health
// snapshot needs another store read.
func (s *Service) SessionInfo(ctx context.Context, signed string, record session.Record) (SessionInfo, error) {
	health, err := s.sessions.Health(ctx, signed)
	if err != nil {
		return SessionInfo{}, err
	}

	return SessionInfo{
		Username: record.Identity.Username,
		Role:     string(record.Identity.Role),
		Health:   health,
	}, nil
}
