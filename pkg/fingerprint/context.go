package fingerprint

import "context"

// fingerprintContextKey is the key for storing the fingerprint in context
type fingerprintContextKey struct{}

// SetToContext stores the fingerprint in context
func SetToContext(ctx context.Context, fp Fingerprint) context.Context {
	return context.WithValue(ctx, fingerprintContextKey{}, fp)
}

// FromContext retrieves the fingerprint from context. The second return
// value is false if no middleware put one there.
func FromContext(ctx context.Context) (Fingerprint, bool) {
	fp, ok := ctx.Value(fingerprintContextKey{}).(Fingerprint)
	return fp, ok
}
