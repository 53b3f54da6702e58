package validators

import "errors"

// Validation errors returned by the draft validator. Callers match them with
// [errors.Is]; the HTTP layer maps them to 400 responses.
var (
	// ErrUnsupportedType indicates the validated value is not one of the
	// models the validator knows about.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrUnknownField indicates an unrecognized field name was requested
	// for field-scoped validation.
	ErrUnknownField = errors.New("unknown validation field")

	// ErrInvalidDraftID indicates an empty draft identifier.
	ErrInvalidDraftID = errors.New("invalid draft id")

	// ErrInvalidUserID indicates an empty owner identifier.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrEmptyCipherContent indicates a missing or non-base64 encrypted
	// content field.
	ErrEmptyCipherContent = errors.New("empty or malformed ciphertext content")

	// ErrEmptyCipherMeta indicates a missing or non-base64 encrypted
	// metadata field.
	ErrEmptyCipherMeta = errors.New("empty or malformed ciphertext metadata")

	// ErrInvalidIV indicates the IV field does not decode to exactly the
	// GCM nonce size.
	ErrInvalidIV = errors.New("invalid initialization vector")

	// ErrInvalidSalt indicates the salt field does not decode to exactly
	// the KDF salt size.
	ErrInvalidSalt = errors.New("invalid salt")
)
