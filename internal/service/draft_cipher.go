package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/quietpage/quietpage/internal/crypto"
	"github.com/quietpage/quietpage/models"
)

// draftCipher is the private implementation of [DraftCipher].
//
// A draft's body and metadata are two distinct plaintexts encrypted
// independently under the same key and the same IV. That reuse is safe — GCM
// treats them as independent ciphertext streams — and it is also load-bearing:
// the persisted triple carries one IV for both fields, and previously written
// data depends on that shape.
type draftCipher struct {
	keys     KeyService
	keychain crypto.KeyChain
}

// NewDraftCipher constructs a [DraftCipher] reading the session key through
// the given key service.
func NewDraftCipher(keys KeyService, keychain crypto.KeyChain) DraftCipher {
	return &draftCipher{keys: keys, keychain: keychain}
}

// EncryptDraft implements [DraftCipher].
func (d *draftCipher) EncryptDraft(draft models.Draft) (models.EncryptedDraft, error) {
	key := d.keys.EncryptionKey()
	if key == nil {
		return models.EncryptedDraft{}, ErrKeyNotAvailable
	}
	return d.EncryptDraftWithKey(draft, key)
}

// EncryptDraftWithKey implements [DraftCipher]. One fresh IV per call, shared
// by the content and metadata ciphertexts.
func (d *draftCipher) EncryptDraftWithKey(draft models.Draft, key crypto.Key) (models.EncryptedDraft, error) {
	metaJSON, err := json.Marshal(draft.Meta)
	if err != nil {
		return models.EncryptedDraft{}, fmt.Errorf("marshal draft metadata: %w", err)
	}

	iv, err := d.keychain.GenerateIV()
	if err != nil {
		return models.EncryptedDraft{}, fmt.Errorf("generate iv: %w", err)
	}

	content, err := d.keychain.Encrypt(draft.Content, key, iv)
	if err != nil {
		return models.EncryptedDraft{}, fmt.Errorf("encrypt content: %w", err)
	}
	meta, err := d.keychain.Encrypt(string(metaJSON), key, iv)
	if err != nil {
		return models.EncryptedDraft{}, fmt.Errorf("encrypt metadata: %w", err)
	}

	return models.EncryptedDraft{
		ID:            draft.ID,
		CipherContent: content.CipherText,
		CipherMeta:    meta.CipherText,
		IV:            content.IV,
	}, nil
}

// DecryptDraft implements [DraftCipher].
func (d *draftCipher) DecryptDraft(enc models.EncryptedDraft) (models.Draft, error) {
	key := d.keys.EncryptionKey()
	if key == nil {
		return models.Draft{}, ErrKeyNotAvailable
	}
	return d.DecryptDraftWithKey(enc, key)
}

// DecryptDraftWithKey implements [DraftCipher]. Authentication failures and
// metadata deserialization failures are both folded into ErrDecryptionFailed:
// either way the record cannot be trusted, and it must never be downgraded to
// empty content.
func (d *draftCipher) DecryptDraftWithKey(enc models.EncryptedDraft, key crypto.Key) (models.Draft, error) {
	content, err := d.keychain.Decrypt(enc.CipherContent, enc.IV, key)
	if err != nil {
		return models.Draft{}, wrapDecryptionError("decrypt content", err)
	}

	metaJSON, err := d.keychain.Decrypt(enc.CipherMeta, enc.IV, key)
	if err != nil {
		return models.Draft{}, wrapDecryptionError("decrypt metadata", err)
	}

	var meta models.DraftMeta
	if err := json.Unmarshal([]byte(metaJSON), &meta); err != nil {
		return models.Draft{}, fmt.Errorf("%w: unmarshal metadata: %w", ErrDecryptionFailed, err)
	}

	return models.Draft{ID: enc.ID, Content: content, Meta: meta}, nil
}

// IsReady implements [DraftCipher].
func (d *draftCipher) IsReady() bool {
	return d.keys.IsKeyReady()
}

func wrapDecryptionError(stage string, err error) error {
	if errors.Is(err, crypto.ErrAuthenticationFailed) {
		return fmt.Errorf("%w: %s: %w", ErrDecryptionFailed, stage, err)
	}
	return fmt.Errorf("%s: %w", stage, err)
}
