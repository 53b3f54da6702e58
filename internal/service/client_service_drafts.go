package service

import (
	"context"
	"fmt"

	"github.com/quietpage/quietpage/internal/logger"
	"github.com/quietpage/quietpage/internal/utils"
	"github.com/quietpage/quietpage/models"
)

// clientDraftService is the private implementation of [ClientDraftService].
type clientDraftService struct {
	cipher DraftCipher
	drafts DraftStore
	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewClientDraftService constructs a [ClientDraftService] over the draft
// cipher and the remote draft store.
func NewClientDraftService(cipher DraftCipher, drafts DraftStore, logger *logger.Logger) ClientDraftService {
	return &clientDraftService{
		cipher: cipher,
		drafts: drafts,
		uuid:   utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// SaveDraft implements [ClientDraftService]. Encryption happens before any
// network call; the store only ever sees the ciphertext triple.
func (c *clientDraftService) SaveDraft(ctx context.Context, userID string, draft models.Draft) (models.Draft, error) {
	isNew := draft.ID == ""
	if isNew {
		draft.ID = c.uuid.Generate()
	}

	enc, err := c.cipher.EncryptDraft(draft)
	if err != nil {
		return models.Draft{}, fmt.Errorf("encrypt draft: %w", err)
	}
	enc.UserID = userID

	if isNew {
		if err := c.drafts.SaveDraft(ctx, enc); err != nil {
			return models.Draft{}, fmt.Errorf("save draft: %w", err)
		}
		return draft, nil
	}

	update := models.CipherUpdate{
		ID:            enc.ID,
		CipherContent: enc.CipherContent,
		CipherMeta:    enc.CipherMeta,
		IV:            enc.IV,
	}
	if err := c.drafts.UpdateDraftCiphers(ctx, userID, update); err != nil {
		return models.Draft{}, fmt.Errorf("update draft: %w", err)
	}

	return draft, nil
}

// LoadDrafts implements [ClientDraftService]. Per-draft decryption failures
// are independently recoverable here: skip and log, do not abort the batch.
// Only the rotation protocol treats a single failure as fatal, because there
// it proves the password wrong.
func (c *clientDraftService) LoadDrafts(ctx context.Context, userID string) ([]models.Draft, error) {
	log := logger.FromContext(ctx)

	if !c.cipher.IsReady() {
		return nil, ErrKeyNotAvailable
	}

	encrypted, err := c.drafts.GetAllDrafts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch drafts: %w", err)
	}

	drafts := make([]models.Draft, 0, len(encrypted))
	for _, enc := range encrypted {
		if enc.Deleted {
			continue
		}

		draft, decErr := c.cipher.DecryptDraft(enc)
		if decErr != nil {
			log.Err(decErr).
				Str("func", "clientDraftService.LoadDrafts").
				Str("user_id", userID).
				Str("draft_id", enc.ID).
				Msg("draft could not be decrypted, skipping")
			continue
		}
		drafts = append(drafts, draft)
	}

	return drafts, nil
}

// DeleteDraft implements [ClientDraftService].
func (c *clientDraftService) DeleteDraft(ctx context.Context, userID, draftID string) error {
	if err := c.drafts.DeleteDraft(ctx, userID, draftID); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}

// PurgeDraft implements [ClientDraftService].
func (c *clientDraftService) PurgeDraft(ctx context.Context, userID, draftID string) error {
	if err := c.drafts.PurgeDraft(ctx, userID, draftID); err != nil {
		return fmt.Errorf("purge draft: %w", err)
	}
	return nil
}
