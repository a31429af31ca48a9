package postgres

import (
	"context"
	"database/sql"
	"errors"

	"cataloguer/internal/domain"
)

// GetByUsername retrieves a user by username, returning nil when no row
// matches.
func (d *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT username, password FROM users WHERE username = $1",
		username,
	).Scan(&u.Username, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
