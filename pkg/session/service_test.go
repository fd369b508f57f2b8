package session_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/fingerprint"
	"github.com/dmitrymomot/sessionkit/pkg/roles"
	"github.com/dmitrymomot/sessionkit/pkg/session"
	"github.com/dmitrymomot/sessionkit/pkg/sessionstore"
	"github.com/dmitrymomot/sessionkit/pkg/signer"
)

const (
	uaChromeMac  = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"
	uaFirefoxWin = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:127.0) Gecko/20100101 Firefox/127.0"
)

type testEnv struct {
	svc   *session.Service
	store *sessionstore.Store
	mr    *miniredis.Miniredis
	now   *time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	sig, err := signer.New("test-secret-key-that-is-long-enough!")
	require.NoError(t, err)

	store := sessionstore.New(client, sig)

	now := time.Now()
	svc, err := session.NewService(store, sig, session.DefaultConfig(),
		session.WithClock(func() time.Time { return now }),
	)
	require.NoError(t, err)

	return &testEnv{svc: svc, store: store, mr: mr, now: &now}
}

func alice() session.Identity {
	return session.Identity{Username: "alice", Role: roles.RoleUser}
}

func TestNewService(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	_ = env

	t.Run("rejects max lifetime below rolling ttl", func(t *testing.T) {
		t.Parallel()

		cfg := session.Config{RollingTTL: time.Hour, MaxLifetime: time.Minute}
		sig, err := signer.New("test-secret-key-that-is-long-enough!")
		require.NoError(t, err)

		_, err = session.NewService(env.store, sig, cfg)
		assert.ErrorIs(t, err, session.ErrInvalidConfig)
	})

	t.Run("rejects non-positive rolling ttl", func(t *testing.T) {
		t.Parallel()

		cfg := session.Config{RollingTTL: 0, MaxLifetime: time.Hour}
		sig, err := signer.New("test-secret-key-that-is-long-enough!")
		require.NoError(t, err)

		_, err = session.NewService(env.store, sig, cfg)
		assert.ErrorIs(t, err, session.ErrInvalidConfig)
	})
}

func TestCreateLoad(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := t.Context()
	client := fingerprint.New("203.0.113.5", uaChromeMac)

	signed, err := env.svc.Create(ctx, alice(), client)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	record, err := env.svc.Load(ctx, signed, client)
	require.NoError(t, err)
	assert.Equal(t, "alice", record.Identity.Username)
	assert.Equal(t, roles.RoleUser, record.Identity.Role)
	assert.Equal(t, client.Canonical(), record.Client.Canonical())
	assert.WithinDuration(t, *env.now, record.IssuedAt(), time.Second)
}

func TestLoadRejections(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := t.Context()
	client := fingerprint.New("203.0.113.5", uaChromeMac)

	signed, err := env.svc.Create(ctx, alice(), client)
	require.NoError(t, err)

	t.Run("tampered token", func(t *testing.T) {
		tampered := signed[:len(signed)-1] + string(signed[len(signed)-1]^1)
		_, err := env.svc.Load(ctx, tampered, client)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := env.svc.Load(ctx, "not-a-token", client)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := env.svc.Load(ctx, "", client)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}

func TestSlidingRenewal(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := t.Context()
	client := fingerprint.New("203.0.113.5", uaChromeMac)

	signed, err := env.svc.Create(ctx, alice(), client)
	require.NoError(t, err)

	env.mr.FastForward(30 * time.Minute)

	ttl, err := env.store.TTL(ctx, signed, 24*time.Hour)
	require.NoError(t, err)
	assert.InDelta(t, 30*time.Minute, ttl, float64(time.Second), "half the window consumed")

	_, err = env.svc.Load(ctx, signed, client)
	require.NoError(t, err)

	ttl, err = env.store.TTL(ctx, signed, 24*time.Hour)
	require.NoError(t, err)
	assert.InDelta(t, time.Hour, ttl, float64(time.Second), "read resets the full rolling window")
}

func TestLifetimeCeiling(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := t.Context()
	client := fingerprint.New("203.0.113.5", uaChromeMac)

	signed, err := env.svc.Create(ctx, alice(), client)
	require.NoError(t, err)

	// Keep the record alive in Redis while the absolute clock runs out.
	*env.now = env.now.Add(25 * time.Hour)

	_, err = env.svc.Load(ctx, signed, client)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	// The rejected session is gone, not merely refused.
	var rec session.Record
	assert.ErrorIs(t, env.store.Get(ctx, signed, 48*time.Hour, &rec), sessionstore.ErrNotFound)
}

func TestHijackDetection(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := t.Context()
	chromeMac := fingerprint.New("203.0.113.5", uaChromeMac)
	firefoxWin := fingerprint.New("198.51.100.7", uaFirefoxWin)

	signed, err := env.svc.Create(ctx, alice(), chromeMac)
	require.NoError(t, err)

	// Stolen token presented from a different browser and network.
	_, err = env.svc.Load(ctx, signed, firefoxWin)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	// The legitimate client is logged out too: the record was destroyed.
	_, err = env.svc.Load(ctx, signed, chromeMac)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestHijackDetectionIPOnly(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := t.Context()
	homeNetwork := fingerprint.New("203.0.113.5", uaChromeMac)
	otherNetwork := fingerprint.New("198.51.100.7", uaChromeMac)

	signed, err := env.svc.Create(ctx, alice(), homeNetwork)
	require.NoError(t, err)

	// Same browser, different network: still a mismatch.
	_, err = env.svc.Load(ctx, signed, otherNetwork)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)
}

func TestRevoke(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := t.Context()
	client := fingerprint.New("203.0.113.5", uaChromeMac)

	signed, err := env.svc.Create(ctx, alice(), client)
	require.NoError(t, err)

	env.svc.Revoke(ctx, signed)

	_, err = env.svc.Load(ctx, signed, client)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	// Idempotent, and safe on garbage input.
	env.svc.Revoke(ctx, signed)
	env.svc.Revoke(ctx, "garbage")
	env.svc.Revoke(ctx, "")
}

func TestRevokeStoreDown(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := t.Context()
	client := fingerprint.New("203.0.113.5", uaChromeMac)

	signed, err := env.svc.Create(ctx, alice(), client)
	require.NoError(t, err)

	env.mr.Close()

	// Must not panic or surface the store failure.
	env.svc.Revoke(ctx, signed)
}

func TestStoreUnavailable(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := t.Context()
	client := fingerprint.New("203.0.113.5", uaChromeMac)

	signed, err := env.svc.Create(ctx, alice(), client)
	require.NoError(t, err)

	env.mr.Close()

	_, err = env.svc.Load(ctx, signed, client)
	assert.ErrorIs(t, err, sessionstore.ErrUnavailable)
	assert.NotErrorIs(t, err, session.ErrSessionNotFound, "an outage is not a logout")

	_, err = env.svc.Health(ctx, signed)
	assert.ErrorIs(t, err, sessionstore.ErrUnavailable)

	_, err = env.svc.Create(ctx, alice(), client)
	assert.ErrorIs(t, err, sessionstore.ErrUnavailable)
}

func TestHealth(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := t.Context()
	client := fingerprint.New("203.0.113.5", uaChromeMac)

	signed, err := env.svc.Create(ctx, alice(), client)
	require.NoError(t, err)

	health, err := env.svc.Health(ctx, signed)
	require.NoError(t, err)

	assert.WithinDuration(t, *env.now, health.IssuedAt, time.Second)
	assert.Equal(t, health.IssuedAt.Add(24*time.Hour), health.MaxAgeAt)
	assert.WithinDuration(t, env.now.Add(time.Hour), health.NextExpiryAt, 2*time.Second)

	t.Run("read only, does not slide the ttl", func(t *testing.T) {
		env.mr.FastForward(30 * time.Minute)

		_, err := env.svc.Health(ctx, signed)
		require.NoError(t, err)

		ttl, err := env.store.TTL(ctx, signed, 24*time.Hour)
		require.NoError(t, err)
		assert.InDelta(t, 30*time.Minute, ttl, float64(time.Second))
	})

	t.Run("missing session", func(t *testing.T) {
		env.svc.Revoke(ctx, signed)

		_, err := env.svc.Health(ctx, signed)
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}

func TestContext(t *testing.T) {
	t.Parallel()

	record := session.Record{Identity: alice(), CreatedAt: 1700000000}

	ctx := session.SetToContext(t.Context(), record)
	got, ok := session.FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, record, got)

	_, ok = session.FromContext(t.Context())
	assert.False(t, ok)
}
