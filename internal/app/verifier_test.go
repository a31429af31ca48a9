package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptVerifier(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	v := BcryptVerifier{}
	assert.True(t, v.Verify(string(hash), "secret"))
	assert.False(t, v.Verify(string(hash), "Secret"))
	assert.False(t, v.Verify("not-a-hash", "secret"))
}

func TestPlaintextVerifier(t *testing.T) {
	v := PlaintextVerifier{}
	assert.True(t, v.Verify("secret", "secret"))
	assert.False(t, v.Verify("secret", "Secret"))
	assert.False(t, v.Verify("secret", ""))
}
