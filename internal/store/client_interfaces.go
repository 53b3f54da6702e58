package store

import (
	"context"

	"github.com/quietpage/quietpage/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalDraftRepository is the low-level local mirror of the user's encrypted
// drafts, kept so that previously fetched records remain readable while the
// vault API is unreachable. It stores the same opaque ciphertext triples the
// server does; nothing in the local database is plaintext.
type LocalDraftRepository interface {
	// SaveDraft inserts or replaces one draft record in the mirror.
	SaveDraft(ctx context.Context, draft models.EncryptedDraft) error

	// GetAllDrafts returns every mirrored draft owned by the user,
	// including soft-deleted rows.
	GetAllDrafts(ctx context.Context, userID string) ([]models.EncryptedDraft, error)

	// UpdateDraftCiphers replaces the ciphertext triple of one mirrored draft.
	UpdateDraftCiphers(ctx context.Context, userID string, update models.CipherUpdate) error

	// MarkDeleted soft-deletes a mirrored draft.
	MarkDeleted(ctx context.Context, userID, draftID string) error

	// Purge permanently removes a mirrored draft row.
	Purge(ctx context.Context, userID, draftID string) error

	// ReplaceAll atomically swaps the user's mirror for the given set of
	// drafts. Called after a successful full fetch from the vault API.
	ReplaceAll(ctx context.Context, userID string, drafts []models.EncryptedDraft) error
}
