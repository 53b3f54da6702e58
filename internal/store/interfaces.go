package store

import (
	"context"

	"github.com/quietpage/quietpage/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts and their credential verifiers.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Returns ErrLoginAlreadyExists on a duplicate login.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the account with the given login, or
	// ErrNoUserWasFound.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)

	// FindUserByID returns the account with the given identifier, or
	// ErrNoUserWasFound.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// UpdatePasswordHash replaces the stored credential verifier.
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error
}

// DraftRepository persists encrypted draft records. The repository treats
// every confidential field as an opaque base64 string.
type DraftRepository interface {
	// Save inserts one or more new draft records.
	Save(ctx context.Context, drafts ...models.EncryptedDraft) error

	// GetAll returns every draft owned by the user, including soft-deleted
	// rows. Password rotation re-encrypts the full corpus.
	GetAll(ctx context.Context, userID string) ([]models.EncryptedDraft, error)

	// UpdateCiphers replaces the ciphertext triple of one or more drafts.
	UpdateCiphers(ctx context.Context, userID string, updates ...models.CipherUpdate) error

	// SoftDelete marks drafts as deleted while retaining the rows.
	SoftDelete(ctx context.Context, userID string, draftIDs ...string) error

	// Purge permanently removes draft rows.
	Purge(ctx context.Context, userID string, draftIDs ...string) error
}

// SaltRepository persists per-user key-derivation salts. A user has at most
// one salt row, enforced by a uniqueness constraint.
type SaltRepository interface {
	// Get returns the user's salt row, or ErrSaltNotFound.
	Get(ctx context.Context, userID string) (models.SaltRecord, error)

	// Insert creates the user's salt row. Returns ErrSaltAlreadyExists when
	// a row is already present.
	Insert(ctx context.Context, record models.SaltRecord) error

	// Replace overwrites the user's salt. Rotation only.
	Replace(ctx context.Context, record models.SaltRecord) error
}
