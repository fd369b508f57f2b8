// Package gate is the authentication boundary between HTTP transport and
// the session core.
//
// The gate reduces every outcome to three cases a client may observe:
// nothing presented, presented but rejected, and store unavailable. The
// session layer's internal distinctions (expired, hijacked, tampered,
// never existed) are deliberately not exposed.
//
// Typical wiring:
//
//	g := gate.New(sessions)
//	r.Use(fingerprint.Middleware)
//	r.Use(g.Middleware)
//	r.With(gate.RequireRole(roles.RoleAdmin)).Get("/admin", handler)
package gate
