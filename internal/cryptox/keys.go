package cryptox

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	seedIterations = 100_000
	seedLength     = 64
	seedSaltFormat = "GophChat:%s:v1"
)

// KeyPair is the credential-derived identity of an account. PrivateKey is 32
// bytes and never leaves the client; PublicKey is base64(SHA-256(PrivateKey)).
type KeyPair struct {
	PrivateKey []byte
	PublicKey  string
}

// Wipe zeroes the private key.
func (k *KeyPair) Wipe() {
	if k == nil {
		return
	}
	common.WipeByteArray(k.PrivateKey)
}

// KeyAgreement turns credentials into key material and combines two parties'
// keys into a shared secret. Callers depend on this interface so that a real
// key-exchange protocol can replace HashChain without touching them.
type KeyAgreement interface {
	DeriveKeyPair(username string, password []byte) *KeyPair
	DeriveSharedSecret(myPrivateKey []byte, theirPublicKey string) (*SharedSecret, error)
}

// HashChain is the deterministic password-derived scheme:
//
//	seed    = PBKDF2-HMAC-SHA256(password, "GophChat:<username>:v1", 100000, 64)
//	private = SHA-256(seed)
//	public  = SHA-256(private)
//	shared  = SHA-256(min(pubA, pubB) || max(pubA, pubB))
//
// It is NOT forward secure: anyone who learns a password (or a public key
// pair and either private key) can decrypt every past and future message of
// that account. Identical credentials on two clients are indistinguishable.
type HashChain struct{}

var _ KeyAgreement = HashChain{}

// DeriveKeyPair is pure: the same username and password always produce the
// same key pair. No network or storage access.
func (HashChain) DeriveKeyPair(username string, password []byte) *KeyPair {
	seed := pbkdf2.Key(password, []byte(fmt.Sprintf(seedSaltFormat, username)), seedIterations, seedLength, sha256.New)
	defer common.WipeByteArray(seed)

	priv := sha256.Sum256(seed)
	pub := sha256.Sum256(priv[:])

	return &KeyPair{
		PrivateKey: priv[:],
		PublicKey:  base64.StdEncoding.EncodeToString(pub[:]),
	}
}

// DeriveSharedSecret combines our private key with the counterpart's base64
// public key. Both parties get the same secret because the two public keys
// are concatenated in byte order.
func (HashChain) DeriveSharedSecret(myPrivateKey []byte, theirPublicKey string) (*SharedSecret, error) {
	theirs, err := base64.StdEncoding.DecodeString(theirPublicKey)
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}
	mine := sha256.Sum256(myPrivateKey)

	first, second := mine[:], theirs
	if bytes.Compare(first, second) >= 0 {
		first, second = second, first
	}

	combined := make([]byte, 0, len(first)+len(second))
	combined = append(combined, first...)
	combined = append(combined, second...)
	secret := sha256.Sum256(combined)

	return NewSharedSecret(secret[:]), nil
}

// DeriveKeyPair is HashChain{}.DeriveKeyPair.
func DeriveKeyPair(username string, password []byte) *KeyPair {
	return HashChain{}.DeriveKeyPair(username, password)
}

// DeriveSharedSecret is HashChain{}.DeriveSharedSecret.
func DeriveSharedSecret(myPrivateKey []byte, theirPublicKey string) (*SharedSecret, error) {
	return HashChain{}.DeriveSharedSecret(myPrivateKey, theirPublicKey)
}
