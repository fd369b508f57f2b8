package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/sessionkit/pkg/pg"
)

// PostgresUserStore implements UserStore on a pgx connection pool.
type PostgresUserStore struct {
	pool *pgxpool.Pool
}

// NewPostgresUserStore creates a UserStore backed by PostgreSQL.
func NewPostgresUserStore(pool *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{pool: pool}
}

// FindByUsername loads an account by its unique username.
func (s *PostgresUserStore) FindByUsername(ctx context.Context, username string) (User, error) {
	var user User
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, role, password_hash FROM users WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &user.Role, &user.PasswordHash)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return User{}, ErrUserNotFound
		}
		return User{}, err
	}

	return user, nil
}

// CreateUser inserts a new account. Username collisions surface as
// ErrUserAlreadyExists.
func (s *PostgresUserStore) CreateUser(ctx context.Context, user User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, username, role, password_hash) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.Role, user.PasswordHash,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return errors.Join(ErrUserAlreadyExists, err)
		}
		return err
	}

	return nil
}
