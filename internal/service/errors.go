package service

import "errors"

// Client-side crypto core errors. Matched with [errors.Is] at the UI boundary.
var (
	// ErrKeyNotAvailable is returned when an encrypt or decrypt is attempted
	// with no derived key in the key store. Recoverable by re-authentication;
	// never escalated to data loss.
	ErrKeyNotAvailable = errors.New("encryption key not available")

	// ErrDecryptionFailed is returned when a record's authentication tag does
	// not verify or its metadata cannot be deserialized. Fatal to that one
	// record; bulk loads skip it, rotation aborts on it.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrIncorrectPassword is reported when the password supplied to rotation
	// fails to decrypt an existing record. Decryption is the only password
	// check available — the KDF itself carries no verifier.
	ErrIncorrectPassword = errors.New("current password is incorrect")

	// ErrRotationHalted marks the partial-failure hazard of rotation: the
	// identity provider already accepted the new password, but the new key
	// could not be derived. Callers must present this distinctly, never as a
	// clean abort.
	ErrRotationHalted = errors.New("password changed but key rotation did not complete")

	// ErrNoAccountState is returned when the stored salt for a user cannot be
	// fetched during password verification.
	ErrNoAccountState = errors.New("no account encryption state")
)

// Server-side service errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
