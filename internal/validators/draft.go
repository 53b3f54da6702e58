package validators

import (
	"context"

	"github.com/quietpage/quietpage/internal/crypto"
	"github.com/quietpage/quietpage/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldDraftID targets the client-generated unique identifier of a draft.
	FieldDraftID = "draft_id"

	// FieldUserID targets the owner identifier of a draft or salt record.
	FieldUserID = "user_id"

	// FieldCipherContent targets the encrypted content field of a draft.
	FieldCipherContent = "ciphertext_content"

	// FieldCipherMeta targets the encrypted metadata field of a draft.
	FieldCipherMeta = "ciphertext_metadata"

	// FieldIV targets the initialization vector shared by both ciphertexts.
	FieldIV = "iv"

	// FieldSalt targets the base64 salt of a salt record.
	FieldSalt = "salt"
)

// DraftValidator implements the Validator interface for the ciphertext-shaped
// domain models: EncryptedDraft, CipherUpdate, and SaltRecord.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type DraftValidator struct {
}

// NewDraftValidator constructs a new DraftValidator
// and returns it as the Validator interface.
func NewDraftValidator() Validator {
	return &DraftValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.EncryptedDraft / *models.EncryptedDraft
//   - models.CipherUpdate / *models.CipherUpdate
//   - models.SaltRecord / *models.SaltRecord
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *DraftValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EncryptedDraft:
		return v.validateEncryptedDraft(ctx, value, fields...)
	case *models.EncryptedDraft:
		return v.validateEncryptedDraft(ctx, *value, fields...)

	case models.CipherUpdate:
		return v.validateCipherUpdate(ctx, value, fields...)
	case *models.CipherUpdate:
		return v.validateCipherUpdate(ctx, *value, fields...)

	case models.SaltRecord:
		return v.validateSaltRecord(ctx, value, fields...)
	case *models.SaltRecord:
		return v.validateSaltRecord(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// isBase64 reports whether s is a non-empty standard-base64 string.
func isBase64(s string) bool {
	if s == "" {
		return false
	}
	_, err := crypto.DecodeBase64(s)
	return err == nil
}

// decodesToLen reports whether s is base64 decoding to exactly n bytes.
func decodesToLen(s string, n int) bool {
	raw, err := crypto.DecodeBase64(s)
	return err == nil && len(raw) == n
}

// validateEncryptedDraft validates a persisted draft record.
//
// Default validated fields (when none specified):
// DraftID, UserID, CipherContent, CipherMeta, IV.
func (v *DraftValidator) validateEncryptedDraft(ctx context.Context, draft models.EncryptedDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDraftID, FieldUserID, FieldCipherContent, FieldCipherMeta, FieldIV}
	}

	for _, f := range fields {
		switch f {
		case FieldDraftID:
			if draft.ID == "" {
				return ErrInvalidDraftID
			}
		case FieldUserID:
			if draft.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldCipherContent:
			if !isBase64(draft.CipherContent) {
				return ErrEmptyCipherContent
			}
		case FieldCipherMeta:
			if !isBase64(draft.CipherMeta) {
				return ErrEmptyCipherMeta
			}
		case FieldIV:
			if !decodesToLen(draft.IV, crypto.IVSize) {
				return ErrInvalidIV
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCipherUpdate validates a ciphertext replacement descriptor. The
// same IV-size and base64 rules apply as for a full draft; ownership is
// carried separately by the caller, so no user field is checked.
func (v *DraftValidator) validateCipherUpdate(ctx context.Context, update models.CipherUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDraftID, FieldCipherContent, FieldCipherMeta, FieldIV}
	}

	for _, f := range fields {
		switch f {
		case FieldDraftID:
			if update.ID == "" {
				return ErrInvalidDraftID
			}
		case FieldCipherContent:
			if !isBase64(update.CipherContent) {
				return ErrEmptyCipherContent
			}
		case FieldCipherMeta:
			if !isBase64(update.CipherMeta) {
				return ErrEmptyCipherMeta
			}
		case FieldIV:
			if !decodesToLen(update.IV, crypto.IVSize) {
				return ErrInvalidIV
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSaltRecord validates a salt registry row.
//
// Default validated fields: UserID, Salt.
func (v *DraftValidator) validateSaltRecord(ctx context.Context, record models.SaltRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldSalt}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if record.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldSalt:
			if !decodesToLen(record.Salt, crypto.SaltSize) {
				return ErrInvalidSalt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
