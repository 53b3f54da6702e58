package store

import (
	"context"
	"fmt"

	"github.com/quietpage/quietpage/internal/logger"
	"github.com/quietpage/quietpage/models"
)

// localDraftRepository is the SQLite-backed implementation of
// [LocalDraftRepository].
type localDraftRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalDraftRepository constructs a [LocalDraftRepository] backed by the
// provided SQLite connection and logger.
func NewLocalDraftRepository(db *DB, logger *logger.Logger) LocalDraftRepository {
	return &localDraftRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localDraftRepository) SaveDraft(ctx context.Context, draft models.EncryptedDraft) error {
	log := logger.FromContext(ctx)

	_, err := l.DB.ExecContext(ctx, clientSaveDraft,
		draft.ID,
		draft.UserID,
		draft.CipherContent,
		draft.CipherMeta,
		draft.IV,
		draft.Deleted,
	)
	if err != nil {
		log.Err(err).
			Str("func", "localDraftRepository.SaveDraft").
			Str("draft_id", draft.ID).
			Msg("failed to save draft to local mirror")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (l *localDraftRepository) GetAllDrafts(ctx context.Context, userID string) ([]models.EncryptedDraft, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := l.DB.QueryContext(ctx, clientGetAllDrafts, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "localDraftRepository.GetAllDrafts").
			Str("user_id", userID).
			Msg("failed to query local draft mirror")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	drafts := make([]models.EncryptedDraft, 0, 50)

	for rows.Next() {
		var draft models.EncryptedDraft

		scanErr := rows.Scan(
			&draft.ID,
			&draft.UserID,
			&draft.CipherContent,
			&draft.CipherMeta,
			&draft.IV,
			&draft.CreatedAt,
			&draft.UpdatedAt,
			&draft.Deleted,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localDraftRepository.GetAllDrafts").
				Str("user_id", userID).
				Msg("failed to scan mirrored draft row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		drafts = append(drafts, draft)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "localDraftRepository.GetAllDrafts").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return drafts, nil
}

func (l *localDraftRepository) UpdateDraftCiphers(ctx context.Context, userID string, update models.CipherUpdate) error {
	log := logger.FromContext(ctx)

	result, err := l.DB.ExecContext(ctx, clientUpdateDraftCiphers,
		update.CipherContent,
		update.CipherMeta,
		update.IV,
		update.ID,
		userID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "localDraftRepository.UpdateDraftCiphers").
			Str("draft_id", update.ID).
			Msg("failed to update mirrored draft ciphers")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrDraftNotFound
	}

	return nil
}

func (l *localDraftRepository) MarkDeleted(ctx context.Context, userID, draftID string) error {
	log := logger.FromContext(ctx)

	result, err := l.DB.ExecContext(ctx, clientMarkDraftDeleted, draftID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "localDraftRepository.MarkDeleted").
			Str("draft_id", draftID).
			Msg("failed to soft-delete mirrored draft")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrDraftNotFound
	}

	return nil
}

func (l *localDraftRepository) Purge(ctx context.Context, userID, draftID string) error {
	log := logger.FromContext(ctx)

	result, err := l.DB.ExecContext(ctx, clientPurgeDraft, draftID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "localDraftRepository.Purge").
			Str("draft_id", draftID).
			Msg("failed to purge mirrored draft")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrDraftNotFound
	}

	return nil
}

// ReplaceAll clears the user's mirror and re-inserts the given drafts in one
// transaction, so readers never observe a half-refreshed mirror.
func (l *localDraftRepository) ReplaceAll(ctx context.Context, userID string, drafts []models.EncryptedDraft) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localDraftRepository.ReplaceAll").
			Str("user_id", userID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, clientClearUserDrafts, userID); err != nil {
		log.Err(err).
			Str("func", "localDraftRepository.ReplaceAll").
			Str("user_id", userID).
			Msg("failed to clear local draft mirror")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	stmt, err := tx.PrepareContext(ctx, clientSaveDraft)
	if err != nil {
		log.Err(err).
			Str("func", "localDraftRepository.ReplaceAll").
			Int("count", len(drafts)).
			Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, draft := range drafts {
		_, execErr := stmt.ExecContext(ctx,
			draft.ID,
			draft.UserID,
			draft.CipherContent,
			draft.CipherMeta,
			draft.IV,
			draft.Deleted,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "localDraftRepository.ReplaceAll").
				Int("iteration", idx+1).
				Str("draft_id", draft.ID).
				Msg("failed to execute prepared statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "localDraftRepository.ReplaceAll").
			Int("count", len(drafts)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}
