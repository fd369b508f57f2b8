// Package sessionstore persists session records in Redis under signed
// opaque tokens.
//
// The store is the only component that touches Redis keys. Create returns
// the raw token for the caller to sign; Get, Delete, Extend and TTL take the
// signed form and unwrap it internally, collapsing every unwrap failure into
// ErrNotFound. Transport failures surface as ErrUnavailable so that callers
// can distinguish "no such session" from "cannot know right now".
package sessionstore
