// Package memory implements in-memory repositories for development and
// testing.
package memory

import (
	"context"
	"sync"
	"time"

	"cataloguer/internal/domain"
)

// DB implements the domain repositories in process memory.
type DB struct {
	mu         sync.Mutex
	catalogues []domain.Catalogue
	users      map[string]domain.User
	sessions   map[string]*domain.Session

	catalogueIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		users:    make(map[string]domain.User),
		sessions: make(map[string]*domain.Session),
	}
}

// Ensure interfaces are met.
var _ domain.CatalogueRepository = (*DB)(nil)
var _ domain.UserRepository = (*DB)(nil)
var _ domain.SessionRepository = (*SessionRepo)(nil)

// --- CatalogueRepository ---

// Create inserts a catalogue, assigning the next id.
func (db *DB) Create(ctx context.Context, c domain.Catalogue) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.catalogueIDCounter++
	c.ID = db.catalogueIDCounter
	db.catalogues = append(db.catalogues, c)
	return 1, nil
}

// GetByID returns the catalogue with the given id, or nil.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.Catalogue, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.catalogues {
		if db.catalogues[i].ID == id {
			c := db.catalogues[i]
			return &c, nil
		}
	}
	return nil, nil
}

// GetAll returns every catalogue in insertion order.
func (db *DB) GetAll(ctx context.Context) ([]domain.Catalogue, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.Catalogue, len(db.catalogues))
	copy(out, db.catalogues)
	return out, nil
}

// UpdateByID overwrites the business fields of the catalogue with the given
// id, returning the number of rows affected.
func (db *DB) UpdateByID(ctx context.Context, id int64, c domain.Catalogue) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.catalogues {
		if db.catalogues[i].ID == id {
			c.ID = id
			db.catalogues[i] = c
			return 1, nil
		}
	}
	return 0, nil
}

// DeleteByID removes the catalogue with the given id.
func (db *DB) DeleteByID(ctx context.Context, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.catalogues {
		if db.catalogues[i].ID == id {
			db.catalogues = append(db.catalogues[:i], db.catalogues[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// --- UserRepository ---

// SeedUser adds a user row. Not part of the repository port; it exists so
// tests and development setups can provision credentials.
func (db *DB) SeedUser(username, password string) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.users[username] = domain.User{Username: username, Password: password}
}

// GetByUsername returns the user with the given username, or nil.
func (db *DB) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if u, ok := db.users[username]; ok {
		return &u, nil
	}
	return nil, nil
}

// --- SessionRepository ---

// SessionRepo implements session persistence in memory.
type SessionRepo struct {
	db *DB
}

// NewSessionRepo creates a new session repository.
func (db *DB) NewSessionRepo() *SessionRepo {
	return &SessionRepo{db: db}
}

// Create stores a new session.
func (r *SessionRepo) Create(ctx context.Context, username, token string, expiresAt time.Time) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.sessions[token] = &domain.Session{
		Token:     token,
		Username:  username,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// GetByToken retrieves a session by token, dropping it when expired.
func (r *SessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if s, ok := r.db.sessions[token]; ok {
		if time.Now().After(s.ExpiresAt) {
			delete(r.db.sessions, token)
			return nil, nil
		}
		return s, nil
	}
	return nil, nil
}

// Delete deletes a session.
func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	delete(r.db.sessions, token)
	return nil
}

// DeleteExpired deletes all expired sessions.
func (r *SessionRepo) DeleteExpired(ctx context.Context) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := time.Now()
	for k, v := range r.db.sessions {
		if now.After(v.ExpiresAt) {
			delete(r.db.sessions, k)
		}
	}
	return nil
}
