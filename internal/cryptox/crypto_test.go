package cryptox

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	key1 := DeriveKey(password, salt)
	key2 := DeriveKey(password, salt)

	assert.Equal(t, key1, key2)
	assert.Len(t, key1, 32)
	assert.Equal(t, "9290403300158e19f27e48e7087f7383b03065bf5b25ef23ebc40229616cd8b3", hex.EncodeToString(key1))
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	password := []byte("secret-password")

	assert.NotEqual(t, DeriveKey(password, []byte("salt-1")), DeriveKey(password, []byte("salt-2")))
}

func TestNewSalt(t *testing.T) {
	s1, err := NewSalt()
	require.NoError(t, err)
	s2, err := NewSalt()
	require.NoError(t, err)

	assert.Len(t, s1, SaltSize)
	assert.NotEqual(t, s1, s2)
}

func TestCheckPassword(t *testing.T) {
	salt, err := NewSalt()
	require.NoError(t, err)
	verifier := MakeVerifier(DeriveKey([]byte("hunter2"), salt))

	assert.True(t, CheckPassword([]byte("hunter2"), salt, verifier))
	assert.False(t, CheckPassword([]byte("hunter3"), salt, verifier))
	assert.False(t, CheckPassword([]byte("hunter2"), []byte("other-salt"), verifier))
	assert.False(t, CheckPassword([]byte("hunter2"), salt, nil))
}
