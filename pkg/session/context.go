package session

import "context"

// recordContextKey is the key for storing the session record in context
type recordContextKey struct{}

// SetToContext stores the validated session record in context
func SetToContext(ctx context.Context, record Record) context.Context {
	return context.WithValue(ctx, recordContextKey{}, record)
}

// FromContext retrieves the session record from context. The second return
// value is false if no authentication middleware put one there.
func FromContext(ctx context.Context) (Record, bool) {
	record, ok := ctx.Value(recordContextKey{}).(Record)
	return record, ok
}
