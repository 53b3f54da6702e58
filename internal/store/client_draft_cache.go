package store

import (
	"context"

	"github.com/quietpage/quietpage/internal/logger"
	"github.com/quietpage/quietpage/models"
)

// RemoteDraftStore is the subset of the vault API the cache sits in front
// of. The HTTP adapter satisfies it.
type RemoteDraftStore interface {
	SaveDraft(ctx context.Context, draft models.EncryptedDraft) error
	GetAllDrafts(ctx context.Context, userID string) ([]models.EncryptedDraft, error)
	UpdateDraftCiphers(ctx context.Context, userID string, update models.CipherUpdate) error
	DeleteDraft(ctx context.Context, userID, draftID string) error
	PurgeDraft(ctx context.Context, userID, draftID string) error
}

// CachingDraftStore is a write-through decorator around the remote vault
// API: every successful remote operation is replayed against the local
// SQLite mirror, and a failed full fetch falls back to the mirror so the
// user can still read previously fetched drafts offline.
//
// Writes are never accepted locally when the remote call fails; the mirror
// only lags, it never leads.
type CachingDraftStore struct {
	remote RemoteDraftStore
	local  LocalDraftRepository
	logger *logger.Logger
}

// NewCachingDraftStore wraps the remote store with the local mirror.
func NewCachingDraftStore(remote RemoteDraftStore, local LocalDraftRepository, logger *logger.Logger) *CachingDraftStore {
	return &CachingDraftStore{
		remote: remote,
		local:  local,
		logger: logger,
	}
}

// SaveDraft persists the draft remotely, then mirrors it locally. A mirror
// failure is logged and swallowed: the server copy is authoritative.
func (c *CachingDraftStore) SaveDraft(ctx context.Context, draft models.EncryptedDraft) error {
	if err := c.remote.SaveDraft(ctx, draft); err != nil {
		return err
	}

	if err := c.local.SaveDraft(ctx, draft); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "CachingDraftStore.SaveDraft").
			Str("draft_id", draft.ID).
			Msg("failed to mirror saved draft locally")
	}

	return nil
}

// GetAllDrafts fetches the full corpus from the vault API and refreshes the
// mirror. When the remote call fails the mirror is served instead, so reads
// keep working offline.
func (c *CachingDraftStore) GetAllDrafts(ctx context.Context, userID string) ([]models.EncryptedDraft, error) {
	log := logger.FromContext(ctx)

	drafts, err := c.remote.GetAllDrafts(ctx, userID)
	if err != nil {
		log.Warn().
			Err(err).
			Str("func", "CachingDraftStore.GetAllDrafts").
			Str("user_id", userID).
			Msg("remote fetch failed, serving local mirror")
		return c.local.GetAllDrafts(ctx, userID)
	}

	if replaceErr := c.local.ReplaceAll(ctx, userID, drafts); replaceErr != nil {
		log.Warn().
			Err(replaceErr).
			Str("func", "CachingDraftStore.GetAllDrafts").
			Str("user_id", userID).
			Msg("failed to refresh local mirror")
	}

	return drafts, nil
}

func (c *CachingDraftStore) UpdateDraftCiphers(ctx context.Context, userID string, update models.CipherUpdate) error {
	if err := c.remote.UpdateDraftCiphers(ctx, userID, update); err != nil {
		return err
	}

	if err := c.local.UpdateDraftCiphers(ctx, userID, update); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "CachingDraftStore.UpdateDraftCiphers").
			Str("draft_id", update.ID).
			Msg("failed to mirror cipher update locally")
	}

	return nil
}

func (c *CachingDraftStore) DeleteDraft(ctx context.Context, userID, draftID string) error {
	if err := c.remote.DeleteDraft(ctx, userID, draftID); err != nil {
		return err
	}

	if err := c.local.MarkDeleted(ctx, userID, draftID); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "CachingDraftStore.DeleteDraft").
			Str("draft_id", draftID).
			Msg("failed to mirror soft delete locally")
	}

	return nil
}

func (c *CachingDraftStore) PurgeDraft(ctx context.Context, userID, draftID string) error {
	if err := c.remote.PurgeDraft(ctx, userID, draftID); err != nil {
		return err
	}

	if err := c.local.Purge(ctx, userID, draftID); err != nil {
		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "CachingDraftStore.PurgeDraft").
			Str("draft_id", draftID).
			Msg("failed to mirror purge locally")
	}

	return nil
}
