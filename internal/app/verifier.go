package app

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier compares a supplied password against the credential
// stored in the users table. The verifier is pluggable so the storage format
// can change without touching the login contract.
type CredentialVerifier interface {
	Verify(stored, supplied string) bool
}

// BcryptVerifier expects bcrypt hashes in the users table. This is the
// default.
type BcryptVerifier struct{}

// Verify reports whether supplied matches the stored bcrypt hash.
func (BcryptVerifier) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// PlaintextVerifier compares credentials stored in the clear. It exists only
// for legacy databases that never hashed passwords; anything new should use
// BcryptVerifier.
type PlaintextVerifier struct{}

// Verify performs a constant-time comparison of the two strings.
func (PlaintextVerifier) Verify(stored, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
