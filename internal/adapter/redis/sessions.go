// Package redis implements the session repository on Redis. Each session is
// a hash under session:<token> whose TTL matches the session lifetime, so
// expired sessions disappear without a sweeper.
package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"cataloguer/internal/domain"
)

const keyPrefix = "session:"

// Open connects to Redis and verifies the connection with a ping.
func Open(dsn string) (*goredis.Client, error) {
	opt, err := goredis.ParseURL(dsn)
	if err != nil {
		return nil, err
	}
	opt.DialTimeout = 5 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := goredis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}

// SessionRepo implements domain.SessionRepository on a Redis client.
type SessionRepo struct {
	client *goredis.Client
}

// NewSessionRepo wraps a Redis client as a SessionRepository.
func NewSessionRepo(client *goredis.Client) *SessionRepo {
	return &SessionRepo{client: client}
}

var _ domain.SessionRepository = (*SessionRepo)(nil)

// Create stores a new session hash with a TTL running to expiresAt.
func (r *SessionRepo) Create(ctx context.Context, username, token string, expiresAt time.Time) error {
	key := keyPrefix + token
	fields := map[string]any{
		"username":   username,
		"created_at": time.Now().Format(time.RFC3339),
		"expires_at": expiresAt.Format(time.RFC3339),
	}
	if err := r.client.HSet(ctx, key, fields).Err(); err != nil {
		return err
	}
	return r.client.ExpireAt(ctx, key, expiresAt).Err()
}

// GetByToken retrieves a session, returning nil when the token is unknown or
// already expired.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	data, err := r.client.HGetAll(ctx, keyPrefix+token).Result()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	createdAt, err := time.Parse(time.RFC3339, data["created_at"])
	if err != nil {
		return nil, err
	}
	expiresAt, err := time.Parse(time.RFC3339, data["expires_at"])
	if err != nil {
		return nil, err
	}

	return &domain.Session{
		Token:     token,
		Username:  data["username"],
		ExpiresAt: expiresAt,
		CreatedAt: createdAt,
	}, nil
}

// Delete removes a session. Deleting an absent token is not an error.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, keyPrefix+token).Err()
}

// DeleteExpired is a no-op: Redis evicts sessions via the per-key TTL.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	return nil
}
