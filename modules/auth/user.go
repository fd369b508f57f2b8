package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrymomot/sessionkit/pkg/roles"
)

// User is an account as the auth module sees it.
type User struct {
	ID           uuid.UUID
	Username     string
	Role         roles.Role
	PasswordHash string
}

// UserStore resolves usernames to accounts. Implementations return
// ErrUserNotFound for unknown usernames; the service collapses that into
// ErrInvalidCredentials at the boundary.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (User, error)
	CreateUser(ctx context.Context, user User) error
}
