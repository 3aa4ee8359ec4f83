package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

type ArgonParams struct {
	Memory      uint32 // KiB
	Time        uint32
	Parallelism uint8
	SaltLen     int
	KeyLen      uint32
}

var DefaultArgon = ArgonParams{
	Memory:      64 * 1024,
	Time:        3,
	Parallelism: 1,
	SaltLen:     16,
	KeyLen:      32,
}

var ErrInvalidHash = errors.New("invalid password hash")

const hashPrefix = "argon2id$"

// HashPassword returns argon2id$m=<M>,t=<T>,p=<P>$<b64 salt>$<b64 key>.
func HashPassword(p ArgonParams, password string) (string, error) {
	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password), salt, p.Time, p.Memory, p.Parallelism, p.KeyLen)

	return fmt.Sprintf("%sm=%d,t=%d,p=%d$%s$%s", hashPrefix,
		p.Memory, p.Time, p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// VerifyPassword compares in constant time. A malformed hash is an error,
// a mismatch is (false, nil).
func VerifyPassword(password, encoded string) (bool, error) {
	rest, ok := strings.CutPrefix(encoded, hashPrefix)
	if !ok {
		return false, ErrInvalidHash
	}
	parts := strings.Split(rest, "$")
	if len(parts) != 3 {
		return false, ErrInvalidHash
	}

	var m, t uint32
	var p uint8
	if _, err := fmt.Sscanf(parts[0], "m=%d,t=%d,p=%d", &m, &t, &p); err != nil {
		return false, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false, ErrInvalidHash
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[2])
	if err != nil || len(want) == 0 {
		return false, ErrInvalidHash
	}

	got := argon2.IDKey([]byte(password), salt, t, m, p, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
