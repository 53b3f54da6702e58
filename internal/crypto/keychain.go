// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Sizes of the random material produced by the key chain.
const (
	// SaltSize is the per-user key-derivation salt length in bytes.
	SaltSize = 16

	// IVSize is the AES-GCM nonce length in bytes.
	IVSize = 12

	// KeySize is the derived key length in bytes (AES-256).
	KeySize = 32

	// kdfIterations is the PBKDF2 iteration count. The cost is a deliberate
	// brute-force control, expected to take tens to low-hundreds of
	// milliseconds on typical hardware.
	kdfIterations = 100_000
)

// ErrAuthenticationFailed is returned by Decrypt when the GCM authentication
// tag does not verify. It covers wrong key, tampered ciphertext, tampered IV,
// and truncated or extended input alike; callers must not distinguish further.
var ErrAuthenticationFailed = errors.New("authentication failed")

// Key is 256 bits of derived symmetric key material. It lives only in client
// memory: never serialized, never transmitted, never written to storage.
type Key []byte

// CipherText is the transport-safe result of one Encrypt call: the ciphertext
// and the IV it was produced under, both base64 (standard encoding).
type CipherText struct {
	CipherText string
	IV         string
}

// keyChain is the private implementation of [KeyChain].
type keyChain struct{}

// NewKeyChain constructs the production [KeyChain]: PBKDF2-SHA256 with
// 100 000 iterations for key derivation and AES-256-GCM for authenticated
// encryption.
func NewKeyChain() KeyChain {
	return &keyChain{}
}

// GenerateSalt implements [KeyChain]. It reads 16 random bytes from the OS
// CSPRNG. Returns an error only if the platform random source fails.
func (k *keyChain) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// GenerateIV implements [KeyChain]. It reads 12 random bytes from the OS
// CSPRNG. At 96 bits the collision probability over the lifetime of an
// account is negligible.
func (k *keyChain) GenerateIV() ([]byte, error) {
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

// DeriveKey implements [KeyChain]. The password is taken as its UTF-8 bytes,
// so any string input is acceptable.
func (k *keyChain) DeriveKey(password string, salt []byte) Key {
	return pbkdf2.Key([]byte(password), salt, kdfIterations, KeySize, sha256.New)
}

// Encrypt implements [KeyChain]. The IV is returned alongside the ciphertext
// rather than prepended to it: the stored record shape keeps them as separate
// fields because one IV is shared by the two ciphertext streams of a record.
func (k *keyChain) Encrypt(plaintext string, key Key, iv []byte) (CipherText, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return CipherText{}, err
	}

	if iv == nil {
		if iv, err = k.GenerateIV(); err != nil {
			return CipherText{}, fmt.Errorf("generate iv: %w", err)
		}
	}
	if len(iv) != gcm.NonceSize() {
		return CipherText{}, fmt.Errorf("invalid iv length: %d", len(iv))
	}

	ct := gcm.Seal(nil, iv, []byte(plaintext), nil)

	return CipherText{
		CipherText: EncodeBase64(ct),
		IV:         EncodeBase64(iv),
	}, nil
}

// Decrypt implements [KeyChain]. Any tag mismatch is reported as
// [ErrAuthenticationFailed]; base64 and length problems are reported as
// ordinary errors because they indicate corrupted transport encoding, not a
// failed authenticity check.
func (k *keyChain) Decrypt(ciphertextB64, ivB64 string, key Key) (string, error) {
	ct, err := DecodeBase64(ciphertextB64)
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", err)
	}
	iv, err := DecodeBase64(ivB64)
	if err != nil {
		return "", fmt.Errorf("decode iv: %w", err)
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}
	if len(iv) != gcm.NonceSize() {
		return "", fmt.Errorf("invalid iv length: %d", len(iv))
	}

	plaintext, err := gcm.Open(nil, iv, ct, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	return string(plaintext), nil
}

// newGCM builds the AES-256-GCM AEAD for the given key.
func newGCM(key Key) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("invalid key length: %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// EncodeBase64 encodes raw bytes with the standard base64 alphabet.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 reverses EncodeBase64. Round-trips exactly for all byte
// values and all lengths, including the empty buffer.
func DecodeBase64(value string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(value)
}
