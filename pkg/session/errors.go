package session

import "errors"

var (
	// ErrSessionNotFound is the single rejection the service reports for a
	// session that cannot be used: missing, expired, tampered, or bound to a
	// different client. Collapsing the reasons keeps probing uninformative.
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrInvalidConfig indicates the service was constructed with an
	// unusable configuration.
	ErrInvalidConfig = errors.New("session.invalid_config")
)
