package cryptox

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSecret(t *testing.T) *SharedSecret {
	t.Helper()
	alice := DeriveKeyPair("alice", []byte("pw1"))
	bob := DeriveKeyPair("bob", []byte("pw2"))
	s, err := DeriveSharedSecret(alice.PrivateKey, bob.PublicKey)
	require.NoError(t, err)
	return s
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	s := testSecret(t)

	for _, msg := range []string{"hello", "x", strings.Repeat("a", 16), "привет 👋", strings.Repeat("long ", 200)} {
		env, err := s.Encrypt(msg)
		require.NoError(t, err)
		assert.Equal(t, msg, s.Decrypt(env))
	}
}

func TestEncrypt_FreshIV(t *testing.T) {
	s := testSecret(t)

	e1, err := s.Encrypt("hello")
	require.NoError(t, err)
	e2, err := s.Encrypt("hello")
	require.NoError(t, err)

	assert.NotEqual(t, e1, e2)
}

func TestEncryptDecrypt_Empty(t *testing.T) {
	s := testSecret(t)

	env, err := s.Encrypt("")
	require.NoError(t, err)
	assert.Equal(t, "", env)
	assert.Equal(t, "", s.Decrypt(""))
}

func TestDecrypt_Failures(t *testing.T) {
	s := testSecret(t)
	good, err := s.Encrypt("hello")
	require.NoError(t, err)

	raw, _ := base64.StdEncoding.DecodeString(good)
	truncated := base64.StdEncoding.EncodeToString(raw[:20])

	tests := []struct {
		name     string
		secret   *SharedSecret
		envelope string
	}{
		{"not base64", s, "%%%"},
		{"shorter than one block", s, base64.StdEncoding.EncodeToString([]byte("tiny"))},
		{"truncated", s, truncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Undisplayable, tt.secret.Decrypt(tt.envelope))
		})
	}
}

func TestDecrypt_WrongKeyNeverLeaksPlaintext(t *testing.T) {
	s := testSecret(t)
	other := NewSharedSecret(make([]byte, 32))

	for i := 0; i < 2000; i++ {
		env, err := s.Encrypt(fmt.Sprintf("message %d", i))
		require.NoError(t, err)
		require.Equal(t, Undisplayable, other.Decrypt(env), "envelope %d", i)
	}
}

func TestDecrypt_TextWithTabsAndNewlines(t *testing.T) {
	s := testSecret(t)

	for _, msg := range []string{"a\tb", "line one\nline two", "ünïcödé ✓"} {
		env, err := s.Encrypt(msg)
		require.NoError(t, err)
		assert.Equal(t, msg, s.Decrypt(env))
	}
}

func TestIsText(t *testing.T) {
	assert.True(t, isText([]byte("plain text\twith\ttabs\n")))
	assert.True(t, isText([]byte("привет")))
	assert.False(t, isText([]byte{0xff, 0xfe, 'a'}))
	assert.False(t, isText([]byte("bell\a")))
	assert.False(t, isText([]byte{'a', 0x00, 'b'}))
}

func TestSharedSecretEqual(t *testing.T) {
	a := NewSharedSecret([]byte("0123456789abcdef0123456789abcdef"))
	b := NewSharedSecret([]byte("0123456789abcdef0123456789abcdef"))
	c := NewSharedSecret([]byte("fedcba9876543210fedcba9876543210"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	b.Wipe()
	assert.False(t, a.Equal(b))
	assert.False(t, b.Equal(a))
}

func TestSharedSecretWipe(t *testing.T) {
	s := testSecret(t)
	env, err := s.Encrypt("hello")
	require.NoError(t, err)

	s.Wipe()
	s.Wipe()

	_, err = s.Encrypt("hello")
	assert.ErrorIs(t, err, ErrSecretReleased)
	assert.Equal(t, Undisplayable, s.Decrypt(env))
	assert.Equal(t, "", s.Decrypt(""))
}

func TestPKCS7(t *testing.T) {
	padded := pkcs7Pad([]byte("abc"), 16)
	assert.Len(t, padded, 16)

	out, err := pkcs7Unpad(padded, 16)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)

	full := pkcs7Pad(make([]byte, 16), 16)
	assert.Len(t, full, 32)

	_, err = pkcs7Unpad([]byte{1, 2, 3, 0}, 16)
	assert.Error(t, err)
	_, err = pkcs7Unpad(append(make([]byte, 14), 3, 2), 16)
	assert.Error(t, err)
}
