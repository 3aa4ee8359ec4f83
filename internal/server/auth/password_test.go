package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastArgon = ArgonParams{Memory: 1024, Time: 1, Parallelism: 1, SaltLen: 16, KeyLen: 32}

func TestHashAndVerify(t *testing.T) {
	h, err := HashPassword(fastArgon, "pw123456")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(h, "argon2id$m=1024,t=1,p=1$"))

	ok, err := VerifyPassword("pw123456", h)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong", h)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := HashPassword(fastArgon, "same")
	require.NoError(t, err)
	b, err := HashPassword(fastArgon, "same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	for _, h := range []string{
		"",
		"bcrypt$xyz",
		"argon2id$m=1,t=1$salt",
		"argon2id$garbage$c2FsdA$a2V5",
		"argon2id$m=1024,t=1,p=1$!!$a2V5",
		"argon2id$m=1024,t=1,p=1$c2FsdA$",
	} {
		_, err := VerifyPassword("pw", h)
		assert.ErrorIs(t, err, ErrInvalidHash, h)
	}
}
