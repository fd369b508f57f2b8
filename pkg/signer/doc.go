// Package signer provides the cryptographic primitives for the session core:
// timestamped HMAC signing of opaque tokens and bcrypt hashing of credentials.
//
// Signer produces URL-safe signed tokens whose embedded issue time bounds
// their validity independently of any server-side storage. Hasher wraps
// bcrypt with a never-panics Verify suitable for login paths.
//
// Both types are plain values constructed with their secrets injected; the
// package keeps no global state, so tests can swap secrets freely.
//
// # Usage
//
//	sig, err := signer.New(secretKey, signer.WithSalt("auth.sessions"))
//	if err != nil {
//	    return err
//	}
//
//	signed := sig.Sign(token)
//	token, err := sig.Unsign(signed, 24*time.Hour)
//	if err != nil {
//	    // forged, corrupted or expired all look the same
//	}
//
// Unsign returns ErrInvalidSignature for every failure mode so that callers
// cannot leak why a token was rejected.
package signer
