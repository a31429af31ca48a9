// Package postgres implements the domain repositories using PostgreSQL.
//
// The schema is managed outside this service. Expected tables:
//
//	catalogue (catalogue_id SERIAL PRIMARY KEY, catalogue_name TEXT,
//	           catalogue_description TEXT, effective_from DATE,
//	           effective_to DATE, status TEXT)
//	users     (username TEXT PRIMARY KEY, password TEXT NOT NULL)
//	sessions  (token TEXT PRIMARY KEY, username TEXT NOT NULL,
//	           expires_at TIMESTAMPTZ NOT NULL, created_at TIMESTAMPTZ NOT NULL)
package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

// DB wraps a *sql.DB and implements the domain repository interfaces.
type DB struct {
	sql *sql.DB
}

// Open connects to PostgreSQL and verifies the connection with a ping.
func Open(connStr string) (*DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	return &DB{sql: s}, nil
}

// Close closes the underlying database connection.
func (d *DB) Close() error {
	return d.sql.Close()
}
