package cryptox

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/gophchat/internal/common"
)

// Undisplayable replaces any message body that cannot be decrypted.
const Undisplayable = "[undisplayable message]"

var (
	ErrSecretReleased = errors.New("shared secret released")
	errBadPadding     = errors.New("bad padding")
	errShortEnvelope  = errors.New("envelope too short")
	errNotText        = errors.New("plaintext is not text")
)

// Encrypt produces base64(IV || AES-256-CBC(PKCS7(plaintext))) with a fresh
// random IV. The empty string encrypts to the empty string.
func Encrypt(plaintext string, key []byte) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, aes.BlockSize+len(padded))
	copy(out, common.GenerateRandByteArray(aes.BlockSize))

	cipher.NewCBCEncrypter(block, out[:aes.BlockSize]).CryptBlocks(out[aes.BlockSize:], padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt. It never fails: bad base64, a short envelope, a
// wrong key, corrupt padding or a plaintext that is not text all yield
// Undisplayable.
func Decrypt(envelope string, key []byte) string {
	if envelope == "" {
		return ""
	}
	plaintext, err := decrypt(envelope, key)
	if err != nil {
		return Undisplayable
	}
	return plaintext
}

func decrypt(envelope string, key []byte) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return "", err
	}
	if len(raw) < 2*aes.BlockSize || len(raw)%aes.BlockSize != 0 {
		return "", errShortEnvelope
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	body := raw[aes.BlockSize:]
	cipher.NewCBCDecrypter(block, raw[:aes.BlockSize]).CryptBlocks(body, body)

	plain, err := pkcs7Unpad(body, aes.BlockSize)
	if err != nil {
		return "", err
	}
	// A wrong key still passes the padding check now and then.
	if !isText(plain) {
		return "", errNotText
	}
	return string(plain), nil
}

// isText accepts valid UTF-8 without control characters other than tab and
// newline.
func isText(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if unicode.IsControl(r) && r != '\t' && r != '\n' {
			return false
		}
	}
	return true
}

func pkcs7Pad(b []byte, size int) []byte {
	n := size - len(b)%size
	return append(append(make([]byte, 0, len(b)+n), b...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, size int) ([]byte, error) {
	if len(b) == 0 {
		return nil, errBadPadding
	}
	n := int(b[len(b)-1])
	if n == 0 || n > size || n > len(b) {
		return nil, errBadPadding
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, errBadPadding
		}
	}
	return b[:len(b)-n], nil
}

// SharedSecret is the symmetric key of one conversation. It lives for the
// duration of a chat session and must be wiped when the session ends.
type SharedSecret struct {
	mu  sync.RWMutex
	key []byte
}

// NewSharedSecret copies key into a new handle.
func NewSharedSecret(key []byte) *SharedSecret {
	return &SharedSecret{key: bytes.Clone(key)}
}

// Encrypt encrypts with the held key. It fails with ErrSecretReleased after
// Wipe.
func (s *SharedSecret) Encrypt(plaintext string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.key == nil {
		return "", ErrSecretReleased
	}
	return Encrypt(plaintext, s.key)
}

// Decrypt decrypts with the held key. After Wipe every non-empty envelope is
// Undisplayable.
func (s *SharedSecret) Decrypt(envelope string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.key == nil && envelope != "" {
		return Undisplayable
	}
	return Decrypt(envelope, s.key)
}

// Equal reports, in constant time, whether both handles hold the same key.
func (s *SharedSecret) Equal(other *SharedSecret) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()
	return s.key != nil && other.key != nil && subtle.ConstantTimeCompare(s.key, other.key) == 1
}

// Wipe zeroes and releases the key. Safe to call more than once.
func (s *SharedSecret) Wipe() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	common.WipeByteArray(s.key)
	s.key = nil
}
