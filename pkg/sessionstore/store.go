package sessionstore

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sessionkit/pkg/signer"
)

// DefaultPrefix namespaces session keys in Redis.
const DefaultPrefix = "auth:sessions:"

// tokenBytes is the entropy of an unsigned session token. 32 random bytes
// encode to a 43-character URL-safe string.
const tokenBytes = 32

// Store persists opaque session records in Redis with a TTL.
//
// Create hands out the raw (unsigned) token; every other method accepts the
// signed form and unwraps it with the injected Signer, so a caller holding
// only a forged or expired token can never even name a Redis key. Unwrap
// failures are indistinguishable from missing records.
type Store struct {
	client redis.UniversalClient
	signer *signer.Signer
	prefix string
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix overrides the Redis key namespace.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Store on top of an established Redis client.
func New(client redis.UniversalClient, sig *signer.Signer, opts ...Option) *Store {
	s := &Store{
		client: client,
		signer: sig,
		prefix: DefaultPrefix,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create stores value as JSON under a freshly generated token with the given
// TTL and returns the unsigned token. Signing is the caller's concern.
func (s *Store) Create(ctx context.Context, value any, ttl time.Duration) (string, error) {
	raw := make([]byte, tokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	payload, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("encode session record: %w", err)
	}

	if err := s.client.Set(ctx, s.prefix+token, payload, ttl).Err(); err != nil {
		return "", errors.Join(ErrUnavailable, err)
	}

	return token, nil
}

// Get resolves a signed token and decodes the stored record into dest.
// Returns ErrNotFound when the token does not unwrap, the key is gone, or
// the payload is corrupt; ErrUnavailable when Redis cannot answer.
func (s *Store) Get(ctx context.Context, signed string, maxAge time.Duration, dest any) error {
	key, err := s.resolve(signed, maxAge)
	if err != nil {
		return err
	}

	payload, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return errors.Join(ErrUnavailable, err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		// A record we cannot decode is as good as no record.
		return ErrNotFound
	}

	return nil
}

// Delete removes the record behind a signed token. Deleting an absent or
// unresolvable record is not an error.
func (s *Store) Delete(ctx context.Context, signed string, maxAge time.Duration) error {
	key, err := s.resolve(signed, maxAge)
	if err != nil {
		return nil
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return errors.Join(ErrUnavailable, err)
	}

	return nil
}

// Extend resets the record's TTL to the full duration. Returns ErrNotFound
// if the record no longer exists: reporting the miss instead of silently
// doing nothing lets callers detect a session that vanished between a read
// and its refresh. Callers treat the miss the same as an absent session.
func (s *Store) Extend(ctx context.Context, signed string, maxAge, ttl time.Duration) error {
	key, err := s.resolve(signed, maxAge)
	if err != nil {
		return err
	}

	ok, err := s.client.Expire(ctx, key, ttl).Result()
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	if !ok {
		return ErrNotFound
	}

	return nil
}

// TTL returns the remaining lifetime of the record behind a signed token.
// A missing record is ErrNotFound rather than a zero duration, so callers
// never mistake "gone" for "about to expire".
func (s *Store) TTL(ctx context.Context, signed string, maxAge time.Duration) (time.Duration, error) {
	key, err := s.resolve(signed, maxAge)
	if err != nil {
		return 0, err
	}

	ttl, err := s.client.TTL(ctx, key).Result()
	if err != nil {
		return 0, errors.Join(ErrUnavailable, err)
	}
	// Redis reports -2 for a missing key and -1 for a key without expiry.
	if ttl < 0 {
		return 0, ErrNotFound
	}

	return ttl, nil
}

// resolve unwraps a signed token into the Redis key it names.
func (s *Store) resolve(signed string, maxAge time.Duration) (string, error) {
	token, err := s.signer.Unsign(signed, maxAge)
	if err != nil {
		return "", ErrNotFound
	}
	return s.prefix + token, nil
}
