package sessionstore

import "errors"

var (
	// ErrNotFound means the record is absent: the key does not exist, the
	// signed token failed to unwrap, or the stored payload could not be
	// decoded. Callers must not be able to tell these apart.
	ErrNotFound = errors.New("sessionstore.not_found")

	// ErrUnavailable means Redis could not be reached or answered with a
	// transport-level failure. Unlike ErrNotFound it says nothing about
	// whether the record exists.
	ErrUnavailable = errors.New("sessionstore.unavailable")
)
