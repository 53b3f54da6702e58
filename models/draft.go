package models

import "time"

// Draft is the plaintext, in-memory shape of a journal entry as the UI works
// with it. A Draft exists only transiently on the client: it is produced by
// decryption for display and consumed by encryption before any network call.
// It is never persisted in this form.
type Draft struct {
	// ID is the client-side identifier of the draft (UUID string).
	// Empty for drafts that have not been saved yet.
	ID string `json:"id,omitempty"`

	// Content is the body text of the draft. Arbitrary Unicode, including
	// emoji, control characters, and zero-width characters, round-trips
	// exactly through encryption.
	Content string `json:"content"`

	// Meta carries the small set of named descriptive fields attached to a
	// draft. It is JSON-serialized and encrypted independently of Content.
	Meta DraftMeta `json:"meta"`
}

// DraftMeta describes a draft without containing its body. Like the body it
// is encrypted client-side before storage; the server never sees these values.
type DraftMeta struct {
	Title     string `json:"title,omitempty"`
	Recipient string `json:"recipient,omitempty"`
	Mood      string `json:"mood,omitempty"`
}

// EncryptedDraft is the persisted shape of a draft. All confidential fields
// are opaque base64 strings from the storage layer's perspective.
//
// CipherContent and CipherMeta are two independent ciphertext streams
// produced under the same key and the same IV; the shared IV is part of the
// stored triple and must be preserved exactly for previously written data to
// remain readable.
type EncryptedDraft struct {
	// ID is the client-assigned identifier of the draft (UUID string).
	ID string `json:"id"`

	// UserID is the owner of this draft.
	UserID string `json:"user_id"`

	// CipherContent is the base64-encoded AES-256-GCM ciphertext of the body.
	CipherContent string `json:"ciphertext_content"`

	// CipherMeta is the base64-encoded ciphertext of the JSON-serialized
	// DraftMeta.
	CipherMeta string `json:"ciphertext_metadata"`

	// IV is the base64-encoded 12-byte initialization vector shared by
	// CipherContent and CipherMeta.
	IV string `json:"iv"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`

	// Deleted marks the draft as soft-deleted. Soft-deleted drafts are kept
	// so that password rotation can re-encrypt them along with live ones.
	Deleted bool `json:"deleted"`
}

// TableName returns the name of the database table associated with the
// EncryptedDraft model.
func (d EncryptedDraft) TableName() string {
	return "drafts"
}

// CipherUpdate is the subset of EncryptedDraft fields replaced during
// password rotation: both ciphertexts and the IV, keyed by draft ID.
type CipherUpdate struct {
	ID            string `json:"id"`
	CipherContent string `json:"ciphertext_content"`
	CipherMeta    string `json:"ciphertext_metadata"`
	IV            string `json:"iv"`
}
