package service

import (
	"context"
	"fmt"

	"github.com/quietpage/quietpage/internal/validators"
	"github.com/quietpage/quietpage/models"
)

// DraftValidationService decorates a DraftService with structural validation
// of inbound ciphertext records: base64 well-formedness, IV size, and
// identifier presence. It rejects malformed payloads before they reach the
// repository.
type DraftValidationService struct {
	inner     DraftService
	validator validators.Validator
}

func NewDraftValidationService() DraftServiceWrapper {
	return &DraftValidationService{
		validator: validators.NewDraftValidator(),
	}
}

func (v *DraftValidationService) UploadDrafts(ctx context.Context, drafts ...models.EncryptedDraft) error {
	if len(drafts) == 0 {
		return ErrInvalidDataProvided
	}

	for i, draft := range drafts {
		if err := v.validator.Validate(ctx, draft); err != nil {
			return fmt.Errorf("%w: draft at index %d: %w", ErrInvalidDataProvided, i, err)
		}
	}

	return v.inner.UploadDrafts(ctx, drafts...)
}

func (v *DraftValidationService) DownloadAllDrafts(ctx context.Context, userID string) ([]models.EncryptedDraft, error) {
	if userID == "" {
		return nil, ErrInvalidDataProvided
	}

	return v.inner.DownloadAllDrafts(ctx, userID)
}

func (v *DraftValidationService) UpdateDraftCiphers(ctx context.Context, userID string, updates ...models.CipherUpdate) error {
	if userID == "" || len(updates) == 0 {
		return ErrInvalidDataProvided
	}

	for i, update := range updates {
		if err := v.validator.Validate(ctx, update); err != nil {
			return fmt.Errorf("%w: update at index %d: %w", ErrInvalidDataProvided, i, err)
		}
	}

	return v.inner.UpdateDraftCiphers(ctx, userID, updates...)
}

func (v *DraftValidationService) DeleteDrafts(ctx context.Context, userID string, draftIDs ...string) error {
	if err := v.validateIDList(userID, draftIDs); err != nil {
		return err
	}

	return v.inner.DeleteDrafts(ctx, userID, draftIDs...)
}

func (v *DraftValidationService) PurgeDrafts(ctx context.Context, userID string, draftIDs ...string) error {
	if err := v.validateIDList(userID, draftIDs); err != nil {
		return err
	}

	return v.inner.PurgeDrafts(ctx, userID, draftIDs...)
}

func (v *DraftValidationService) validateIDList(userID string, draftIDs []string) error {
	if userID == "" || len(draftIDs) == 0 {
		return ErrInvalidDataProvided
	}
	for _, id := range draftIDs {
		if id == "" {
			return fmt.Errorf("%w: empty draft id", ErrInvalidDataProvided)
		}
	}
	return nil
}

// Wrap implements [DraftServiceWrapper].
func (v *DraftValidationService) Wrap(inner DraftService) DraftService {
	v.inner = inner
	return v
}
