// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"cataloguer/internal/domain"
)

var (
	// ErrInvalidCredentials indicates that the provided username or password was incorrect.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrSessionNotFound indicates that the requested session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired indicates that the session has expired.
	ErrSessionExpired = errors.New("session expired")
)

// DefaultSessionTTL is the session lifetime used when none is configured.
const DefaultSessionTTL = 24 * time.Hour

// AuthService handles authentication and session management.
type AuthService struct {
	users    domain.UserRepository
	sessions domain.SessionRepository
	verifier CredentialVerifier
	ttl      time.Duration
	log      zerolog.Logger
}

// NewAuthService creates a new authentication service. A nil verifier
// defaults to bcrypt; a zero ttl defaults to DefaultSessionTTL.
func NewAuthService(users domain.UserRepository, sessions domain.SessionRepository, verifier CredentialVerifier, ttl time.Duration, logger zerolog.Logger) *AuthService {
	if verifier == nil {
		verifier = BcryptVerifier{}
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AuthService{
		users:    users,
		sessions: sessions,
		verifier: verifier,
		ttl:      ttl,
		log:      logger,
	}
}

// Login authenticates a user and creates a session, returning the session
// token. A storage failure propagates as-is; it is never reported as
// ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		s.log.Error().Err(err).Str("username", username).Msg("user lookup failed")
		return "", fmt.Errorf("user lookup: %w", err)
	}
	if user == nil || !s.verifier.Verify(user.Password, password) {
		s.log.Warn().Str("username", username).Msg("failed login attempt")
		return "", ErrInvalidCredentials
	}

	token, err := s.createSession(ctx, username)
	if err != nil {
		return "", err
	}
	s.log.Info().Str("username", username).Msg("login successful")
	return token, nil
}

// LoginWithUser creates a session for an already authenticated username,
// e.g. after an SSO callback verified the identity externally.
func (s *AuthService) LoginWithUser(ctx context.Context, username string) (string, error) {
	token, err := s.createSession(ctx, username)
	if err != nil {
		return "", err
	}
	s.log.Info().Str("username", username).Msg("sso login successful")
	return token, nil
}

// Logout invalidates a session. Logging out an absent session succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// ValidateSession resolves a session token to the authenticated username.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (string, error) {
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return "", fmt.Errorf("session lookup: %w", err)
	}
	if session == nil {
		return "", ErrSessionNotFound
	}
	if time.Now().After(session.ExpiresAt) {
		_ = s.sessions.Delete(ctx, token)
		return "", ErrSessionExpired
	}
	return session.Username, nil
}

func (s *AuthService) createSession(ctx context.Context, username string) (string, error) {
	token := uuid.NewString()
	expiresAt := time.Now().Add(s.ttl)
	if err := s.sessions.Create(ctx, username, token, expiresAt); err != nil {
		s.log.Error().Err(err).Str("username", username).Msg("session creation failed")
		return "", fmt.Errorf("session create: %w", err)
	}
	return token, nil
}
