package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minSecretLength = 32

// Signer wraps opaque values in a tamper-evident, timestamped signature.
//
// Signed format: base64url(value).base64url(unix seconds).base64url(signature)
// where the signature is HMAC-SHA256 over the first two segments. The embedded
// timestamp lets Unsign reject values older than a caller-supplied max age,
// independent of any server-side state.
type Signer struct {
	key []byte
	now func() time.Time
}

// Option configures a Signer.
type Option func(*Signer)

// WithSalt derives the signing key from the secret and a namespacing salt,
// so that values signed for one purpose cannot be replayed for another.
func WithSalt(salt string) Option {
	return func(s *Signer) {
		mac := hmac.New(sha256.New, s.key)
		mac.Write([]byte(salt))
		s.key = mac.Sum(nil)
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Signer) {
		s.now = now
	}
}

// New creates a Signer from the given secret. The secret is required at
// construction time; there is no package-level signer state.
func New(secret string, opts ...Option) (*Signer, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("%w: got %d chars, need at least %d", ErrSecretTooShort, len(secret), minSecretLength)
	}

	s := &Signer{
		key: []byte(secret),
		now: time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Sign returns the signed representation of value with the current timestamp
// embedded. The output is URL-safe and can be handed to clients directly.
func (s *Signer) Sign(value string) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(value)) +
		"." +
		base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatInt(s.now().Unix(), 10)))

	return payload + "." + base64.RawURLEncoding.EncodeToString(s.sign(payload))
}

// Unsign verifies the signature and that the embedded timestamp is no older
// than maxAge, returning the original value. Every failure mode collapses to
// ErrInvalidSignature so that callers cannot distinguish a forged token from
// an expired one.
func (s *Signer) Unsign(signed string, maxAge time.Duration) (string, error) {
	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		return "", ErrInvalidSignature
	}

	// Compare the encoded signature text, not decoded bytes: base64 ignores
	// unused trailing bits, so two distinct strings can decode to the same
	// signature and a flipped final character must still be rejected.
	expected := base64.RawURLEncoding.EncodeToString(s.sign(parts[0] + "." + parts[1]))
	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return "", ErrInvalidSignature
	}

	tsRaw, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return "", ErrInvalidSignature
	}
	issued, err := strconv.ParseInt(string(tsRaw), 10, 64)
	if err != nil {
		return "", ErrInvalidSignature
	}

	if age := s.now().Sub(time.Unix(issued, 0)); age > maxAge {
		return "", ErrInvalidSignature
	}

	value, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", ErrInvalidSignature
	}

	return string(value), nil
}

func (s *Signer) sign(payload string) []byte {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(payload))
	return mac.Sum(nil)
}
