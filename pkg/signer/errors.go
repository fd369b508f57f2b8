package signer

import "errors"

var (
	// ErrInvalidSignature covers every unsign failure: malformed input,
	// signature mismatch, and expired timestamps. Callers only need "reject".
	ErrInvalidSignature = errors.New("signer.invalid_signature")

	// ErrSecretTooShort indicates the signing secret is below the minimum length.
	ErrSecretTooShort = errors.New("signer.secret_too_short")
)
