// Package session implements the server-side session lifecycle on top of a
// signed-token Redis store.
//
// A session is created for an identity and bound to the creating client's
// fingerprint. Every validated read slides the expiry out by the rolling
// TTL, up to a hard lifetime ceiling measured from creation. A token
// presented by a client whose fingerprint does not match is treated as a
// hijack attempt: the session is destroyed and the caller learns only that
// no session was found.
//
// All rejection reasons collapse into ErrSessionNotFound. The one exception
// is store unavailability, which the service propagates untouched because it
// carries no information about the session and callers must not treat an
// outage as a logout.
package session
