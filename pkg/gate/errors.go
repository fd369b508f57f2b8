package gate

import "errors"

var (
	// ErrSessionRequired means no credential was presented at all.
	ErrSessionRequired = errors.New("gate.session_required")

	// ErrSessionInvalid means a credential was presented but did not
	// resolve to a usable session. The gate never says why.
	ErrSessionInvalid = errors.New("gate.session_invalid")
)
