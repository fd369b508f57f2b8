package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for unknown usernames and wrong
	// passwords alike, so login responses never confirm account existence.
	ErrInvalidCredentials = errors.New("auth.invalid_credentials")

	// ErrUserNotFound is the storage-level miss. The service translates it
	// to ErrInvalidCredentials before it can reach a client.
	ErrUserNotFound = errors.New("auth.user_not_found")

	// ErrUserAlreadyExists indicates a username collision on provisioning.
	ErrUserAlreadyExists = errors.New("auth.user_already_exists")

	// ErrFailedToParseConfig indicates the environment could not be parsed
	// into the module configuration.
	ErrFailedToParseConfig = errors.New("auth.failed_to_parse_config")
)
