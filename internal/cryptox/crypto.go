package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/json"

	"github.com/dmitrijs2005/gophchat/internal/common"
	"golang.org/x/crypto/argon2"
)

const machineKeySalt = "GophChat:machine:v1"

// DeriveMasterKey stretches a low-entropy secret into a 32-byte AES key with
// argon2id.
func DeriveMasterKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MachineKey derives the key that protects the locally stored session. It is
// bound to the machine identity string (host and OS user), so a copied
// database file does not open elsewhere.
func MachineKey(machineID string) []byte {
	return DeriveMasterKey([]byte(machineID), []byte(machineKeySalt))
}

// SealJSON serializes v to JSON and encrypts it with AES-GCM. A fresh random
// nonce is returned alongside the ciphertext.
func SealJSON(v any, key []byte) (ciphertext, nonce []byte, err error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}
	defer common.WipeByteArray(plaintext)

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	nonce = common.GenerateRandByteArray(aesgcm.NonceSize())
	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)

	return ciphertext, nonce, nil
}

// OpenJSON reverses SealJSON and unmarshals the plaintext into v.
func OpenJSON(ciphertext, nonce, key []byte, v any) error {
	aesgcm, err := newGCM(key)
	if err != nil {
		return err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(plaintext)

	return json.Unmarshal(plaintext, v)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
