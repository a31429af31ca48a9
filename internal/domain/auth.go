package domain

import (
	"context"
	"time"
)

// User is a row in the users table. Password holds the stored credential,
// normally a bcrypt hash; see app.CredentialVerifier for the comparison
// policy.
type User struct {
	Username string
	Password string
}

// Session maps an opaque token held by the client to an authenticated
// username.
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// UserRepository defines the port for user lookups. GetByUsername returns a
// nil user when no row matches.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// SessionRepository defines the port for session persistence. GetByToken
// returns a nil session for unknown tokens; Delete succeeds when the token
// does not exist.
type SessionRepository interface {
	Create(ctx context.Context, username, token string, expiresAt time.Time) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) error
}
