// Package auth is the HTTP-facing authentication module: password login,
// logout, and session introspection on top of the session core.
//
// The module owns the users table (see migrations/) and the translation of
// internal errors to HTTP statuses. Login failures are uniform regardless of
// whether the username exists; a store outage answers 503 so clients retry
// instead of treating it as a logout.
package auth
