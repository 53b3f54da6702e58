package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain is the random/primitive layer of the client-side crypto core.
// It knows nothing about users, storage, or the network; its only job is to
// produce random material, derive keys from passwords, and run the
// authenticated encryption primitive.
//
// Scheme:
//
//	salt      = GenerateSalt()                 (once per user)
//	key       = DeriveKey(password, salt)      (per session)
//	ct, iv    = Encrypt(plaintext, key, nil)   (per record field)
//	plaintext = Decrypt(ct, iv, key)
type KeyChain interface {
	// GenerateSalt returns 16 bytes (128 bits) of cryptographically secure
	// random data. The salt is not a secret — it is stored server-side in
	// the open so that identical passwords derive different keys.
	GenerateSalt() ([]byte, error)

	// GenerateIV returns 12 bytes (96 bits) of cryptographically secure
	// random data for use as an AES-GCM nonce. A fresh IV must be generated
	// for every new record version.
	GenerateIV() ([]byte, error)

	// DeriveKey derives a 256-bit key from the password and salt using
	// PBKDF2-SHA256. Deterministic: the same (password, salt) pair always
	// yields the same key. Accepts any string, including the empty string
	// and arbitrary Unicode — password validation is a UI concern.
	DeriveKey(password string, salt []byte) Key

	// Encrypt encrypts plaintext with AES-256-GCM under key. If iv is nil a
	// fresh one is generated. The plaintext is encoded as UTF-8 so that all
	// Unicode round-trips exactly. Returns the ciphertext and the IV as
	// separate base64 fields.
	Encrypt(plaintext string, key Key, iv []byte) (CipherText, error)

	// Decrypt reverses Encrypt. Returns ErrAuthenticationFailed if the
	// authentication tag does not verify — wrong key, tampered ciphertext,
	// tampered IV, or truncated/extended bytes. Decryption never silently
	// returns corrupted plaintext.
	Decrypt(ciphertextB64, ivB64 string, key Key) (string, error)
}
