package service

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_collaborators_mock.go -package=mock

import (
	"context"

	"github.com/quietpage/quietpage/internal/crypto"
	"github.com/quietpage/quietpage/models"
)

// DraftStore is the record side of the remote storage collaborator. From the
// crypto core's perspective every confidential field it exchanges is an
// opaque base64 string; plaintext never crosses this boundary.
type DraftStore interface {
	// SaveDraft persists a newly encrypted draft.
	SaveDraft(ctx context.Context, draft models.EncryptedDraft) error

	// GetAllDrafts returns every draft owned by the user, including
	// soft-deleted ones. Rotation depends on the full corpus.
	GetAllDrafts(ctx context.Context, userID string) ([]models.EncryptedDraft, error)

	// UpdateDraftCiphers replaces the ciphertext triple of one draft.
	// Used by ordinary saves and by rotation's per-record persistence step.
	UpdateDraftCiphers(ctx context.Context, userID string, update models.CipherUpdate) error

	// DeleteDraft soft-deletes a draft; the row is retained for rotation.
	DeleteDraft(ctx context.Context, userID, draftID string) error

	// PurgeDraft permanently removes a draft row.
	PurgeDraft(ctx context.Context, userID, draftID string) error
}

// SaltStore is the salt side of the remote storage collaborator.
type SaltStore interface {
	// GetSalt fetches the user's salt row. Returns store.ErrSaltNotFound
	// when the user has never completed setup; that is an expected
	// condition, not a generic failure.
	GetSalt(ctx context.Context, userID string) (models.SaltRecord, error)

	// InsertSalt creates the user's salt row. A concurrent first-login that
	// already inserted one surfaces store.ErrSaltAlreadyExists via the
	// storage uniqueness constraint rather than silently overwriting.
	InsertSalt(ctx context.Context, record models.SaltRecord) error

	// ReplaceSalt unconditionally replaces the user's salt. Rotation only,
	// after every record has been re-encrypted.
	ReplaceSalt(ctx context.Context, record models.SaltRecord) error
}

// IdentityProvider is the authentication collaborator. It issues the stable
// user identifier elsewhere; the crypto core only needs the credential-update
// call during password rotation. It takes no part in key derivation.
type IdentityProvider interface {
	UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}

// SaltRegistry manages the per-user salt record: fetch-or-create on first
// use, fetch-only for verification, replace-on-rotation.
type SaltRegistry interface {
	// GetOrCreateSalt returns the user's salt, creating and persisting a new
	// one when none exists. isNewUser reports which path was taken. If a
	// concurrent flow won the insert race, the freshly persisted salt is
	// re-fetched once before giving up.
	GetOrCreateSalt(ctx context.Context, userID string) (salt []byte, isNewUser bool, err error)

	// GetSalt is fetch-only; it reports whether the user has ever completed
	// setup without side effects.
	GetSalt(ctx context.Context, userID string) ([]byte, error)

	// UpdateSalt replaces the persisted salt. Rotation only; ordering
	// relative to record persistence matters and is owned by the rotator.
	UpdateSalt(ctx context.Context, userID string, newSalt []byte) error
}

// KeyService ties the salt registry and the key chain together and owns the
// key store lifecycle. It is the standard post-authentication hook.
type KeyService interface {
	// DeriveAndStoreKey resolves the user's salt (creating one on first
	// login), derives the session key, and commits it to the key store.
	// Any salt failure leaves the key store untouched.
	DeriveAndStoreKey(ctx context.Context, userID, password string) (isNewUser bool, err error)

	// ClearEncryptionKey wipes the key store. Invoked on logout.
	ClearEncryptionKey()

	// IsKeyReady reports whether a session key is available.
	IsKeyReady() bool

	// EncryptionKey returns the active session key, or nil.
	EncryptionKey() crypto.Key

	// VerifyPassword fetches the existing salt (never creating one) and
	// derives a candidate key from the supplied password. The result is
	// provisional: PBKDF2 has no built-in verifier, so correctness is only
	// established downstream by successfully decrypting an existing record.
	VerifyPassword(ctx context.Context, userID, password string) (crypto.Key, []byte, error)

	// DeriveNewKey is pure derivation with no key store interaction. Used
	// mid-rotation to compute the candidate new key before committing.
	DeriveNewKey(password string, salt []byte) crypto.Key

	// GenerateNewSalt returns fresh salt material without persisting it.
	GenerateNewSalt() ([]byte, error)

	// UpdateStoredKey overwrites the key store. The final commit step of
	// rotation.
	UpdateStoredKey(key crypto.Key, salt []byte)
}

// DraftCipher encrypts and decrypts whole drafts using the session key.
type DraftCipher interface {
	// EncryptDraft encrypts the body and the JSON-serialized metadata of a
	// draft independently under one fresh IV. Fails with ErrKeyNotAvailable
	// when no session key is present — the caller should prompt for
	// re-authentication, not retry.
	EncryptDraft(draft models.Draft) (models.EncryptedDraft, error)

	// EncryptDraftWithKey is EncryptDraft under an explicit key, bypassing
	// the key store. Rotation encrypts under the candidate new key before
	// that key is committed.
	EncryptDraftWithKey(draft models.Draft, key crypto.Key) (models.EncryptedDraft, error)

	// DecryptDraft reverses EncryptDraft using the session key. Fails with
	// ErrDecryptionFailed if either field's authentication fails or the
	// metadata cannot be deserialized.
	DecryptDraft(enc models.EncryptedDraft) (models.Draft, error)

	// DecryptDraftWithKey is DecryptDraft under an explicit key. Rotation
	// verifies the old password by decrypting with the candidate key.
	DecryptDraftWithKey(enc models.EncryptedDraft, key crypto.Key) (models.Draft, error)

	// IsReady reports whether the session key is available.
	IsReady() bool
}

// ClientDraftService is the save/load surface the UI calls. It owns the
// encrypt-before-network and decrypt-after-network choreography around the
// draft store.
type ClientDraftService interface {
	// SaveDraft encrypts and persists a draft. New drafts are assigned a
	// client-side UUID; existing ones get a fresh IV and replacement
	// ciphertexts. Returns the draft with its identifier populated.
	SaveDraft(ctx context.Context, userID string, draft models.Draft) (models.Draft, error)

	// LoadDrafts fetches and decrypts every live draft of the user. A draft
	// that fails to decrypt is skipped and logged, never aborting the batch:
	// one corrupted record must not block the rest of the journal.
	LoadDrafts(ctx context.Context, userID string) ([]models.Draft, error)

	// DeleteDraft soft-deletes a draft.
	DeleteDraft(ctx context.Context, userID, draftID string) error

	// PurgeDraft permanently removes a draft.
	PurgeDraft(ctx context.Context, userID, draftID string) error
}
