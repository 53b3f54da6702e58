package service

import (
	"context"

	"github.com/quietpage/quietpage/internal/logger"
	"github.com/quietpage/quietpage/internal/store"
	"github.com/quietpage/quietpage/models"
)

// draftService is the server-side draft API over the draft repository. All
// payloads are opaque ciphertext triples; the service applies no
// interpretation beyond ownership scoping.
type draftService struct {
	draftRepository store.DraftRepository

	logger *logger.Logger
}

func NewDraftService(draftRepository store.DraftRepository, logger *logger.Logger) DraftService {
	return &draftService{
		draftRepository: draftRepository,
		logger:          logger,
	}
}

func (d *draftService) UploadDrafts(ctx context.Context, drafts ...models.EncryptedDraft) error {
	return d.draftRepository.Save(ctx, drafts...)
}

func (d *draftService) DownloadAllDrafts(ctx context.Context, userID string) ([]models.EncryptedDraft, error) {
	return d.draftRepository.GetAll(ctx, userID)
}

func (d *draftService) UpdateDraftCiphers(ctx context.Context, userID string, updates ...models.CipherUpdate) error {
	return d.draftRepository.UpdateCiphers(ctx, userID, updates...)
}

func (d *draftService) DeleteDrafts(ctx context.Context, userID string, draftIDs ...string) error {
	return d.draftRepository.SoftDelete(ctx, userID, draftIDs...)
}

func (d *draftService) PurgeDrafts(ctx context.Context, userID string, draftIDs ...string) error {
	return d.draftRepository.Purge(ctx, userID, draftIDs...)
}
