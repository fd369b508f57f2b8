// Package fingerprint builds a per-client identity from the request IP and
// the classified user agent, used to detect session tokens replayed from a
// different client.
//
// Equality is deliberately coarse: exact IP plus device/OS/browser family.
// Raw user agent strings are kept for diagnostics but never compared, so a
// browser auto-update does not kill the session while a different browser
// or network does.
package fingerprint
