package store

import (
	"context"
	"fmt"

	"github.com/quietpage/quietpage/internal/logger"
	"github.com/quietpage/quietpage/models"
)

// draftRepository is the PostgreSQL-backed implementation of
// [DraftRepository]. It executes all draft operations directly against the
// "drafts" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (user_id, draft id, iteration index).
type draftRepository struct {
	*DB
	logger *logger.Logger
}

// NewDraftRepository constructs a [DraftRepository] backed by the provided
// database connection and logger.
func NewDraftRepository(db *DB, logger *logger.Logger) DraftRepository {
	return &draftRepository{
		DB:     db,
		logger: logger,
	}
}

// Save persists one or more new draft records.
//
// Routing strategy:
//   - Exactly one record → [saveSingleDraft] (plain INSERT, no transaction).
//   - Two or more records → [saveMultipleDrafts] (transaction with a prepared statement).
func (d *draftRepository) Save(ctx context.Context, drafts ...models.EncryptedDraft) error {
	if len(drafts) == 1 {
		return d.saveSingleDraft(ctx, drafts[0])
	}

	return d.saveMultipleDrafts(ctx, drafts)
}

// saveSingleDraft inserts a single draft record without opening a
// transaction.
func (d *draftRepository) saveSingleDraft(ctx context.Context, draft models.EncryptedDraft) error {
	log := logger.FromContext(ctx)

	log.Debug().
		Str("draft_id", draft.ID).
		Str("user_id", draft.UserID).
		Msg("saving single draft record")

	result, err := d.DB.ExecContext(ctx, saveDraft,
		draft.ID,
		draft.UserID,
		draft.CipherContent,
		draft.CipherMeta,
		draft.IV,
	)
	if err != nil {
		log.Err(err).
			Str("func", "draftRepository.saveSingleDraft").
			Str("draft_id", draft.ID).
			Str("user_id", draft.UserID).
			Msg("failed to save draft")

		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Error().
			Str("func", "draftRepository.saveSingleDraft").
			Str("draft_id", draft.ID).
			Msg("provided draft was not saved")
		return ErrDraftNotSaved
	}

	return nil
}

// saveMultipleDrafts inserts two or more draft records inside a single
// database transaction using a prepared statement.
//
// The transaction is rolled back automatically (via defer) if any individual
// insert fails; the commit is attempted only after all records succeed.
func (d *draftRepository) saveMultipleDrafts(ctx context.Context, drafts []models.EncryptedDraft) error {
	log := logger.FromContext(ctx)

	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "draftRepository.saveMultipleDrafts").
			Int("count", len(drafts)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, saveDraft)
	if err != nil {
		log.Err(err).
			Str("func", "draftRepository.saveMultipleDrafts").
			Int("count", len(drafts)).
			Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, draft := range drafts {
		log.Debug().
			Str("func", "draftRepository.saveMultipleDrafts").
			Int("iteration", idx+1).
			Int("total", len(drafts)).
			Str("draft_id", draft.ID).
			Str("user_id", draft.UserID).
			Msg("saving draft in transaction")

		_, execErr := stmt.ExecContext(ctx,
			draft.ID,
			draft.UserID,
			draft.CipherContent,
			draft.CipherMeta,
			draft.IV,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "draftRepository.saveMultipleDrafts").
				Int("iteration", idx+1).
				Str("draft_id", draft.ID).
				Msg("failed to execute prepared statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "draftRepository.saveMultipleDrafts").
			Int("count", len(drafts)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// GetAll retrieves every draft owned by the given user, including
// soft-deleted records. Rotation depends on the full corpus, so no deleted
// filter is applied here.
//
// Returns an empty slice when no records are found.
func (d *draftRepository) GetAll(ctx context.Context, userID string) ([]models.EncryptedDraft, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := d.DB.QueryContext(ctx, getAllUserDrafts, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "draftRepository.GetAll").
			Str("user_id", userID).
			Msg("failed to execute query for getting all user drafts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	allDrafts := make([]models.EncryptedDraft, 0, 50)

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
				Str("func", "draftRepository.GetAll").
				Str("user_id", userID).
				Msg("failed to scan draft row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		allDrafts = append(allDrafts, draft)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "draftRepository.GetAll").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return allDrafts, nil
}

// UpdateCiphers replaces the ciphertext triple of one or more drafts.
//
// Routing strategy:
//   - Zero updates → no-op (returns nil with a warning log).
//   - Exactly one update → [updateSingleCipher] (no transaction overhead).
//   - Two or more updates → [updateMultipleCiphers] (wrapped in a transaction).
//
// Password rotation sends the whole corpus through the multi-record path so
// that a mid-batch failure leaves every row on the old ciphertexts.
func (d *draftRepository) UpdateCiphers(ctx context.Context, userID string, updates ...models.CipherUpdate) error {
	log := logger.FromContext(ctx)

	if len(updates) == 0 {
		log.Warn().
			Str("func", "draftRepository.UpdateCiphers").
			Msg("no cipher updates provided")
		return nil
	}

	if len(updates) == 1 {
		return d.updateSingleCipher(ctx, userID, updates[0])
	}

	return d.updateMultipleCiphers(ctx, userID, updates)
}

// updateSingleCipher replaces one draft's ciphertexts without opening a
// database transaction. Returns [ErrDraftNotFound] if no row matched.
func (d *draftRepository) updateSingleCipher(ctx context.Context, userID string, update models.CipherUpdate) error {
	log := logger.FromContext(ctx)

	result, err := d.DB.ExecContext(ctx, updateDraftCiphers,
		update.CipherContent,
		update.CipherMeta,
		update.IV,
		update.ID,
		userID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "draftRepository.updateSingleCipher").
			Str("draft_id", update.ID).
			Msg("failed to execute cipher update query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "draftRepository.updateSingleCipher").
			Str("draft_id", update.ID).
			Msg("record not found")
		return ErrDraftNotFound
	}

	return nil
}

// updateMultipleCiphers replaces the ciphertexts of two or more drafts inside
// a single database transaction with a prepared statement.
//
// The transaction is rolled back automatically (via defer) if any individual
// update fails or targets a missing row; the commit is attempted only after
// all updates succeed.
func (d *draftRepository) updateMultipleCiphers(ctx context.Context, userID string, updates []models.CipherUpdate) error {
	log := logger.FromContext(ctx)

	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "draftRepository.updateMultipleCiphers").
			Int("updates_count", len(updates)).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, updateDraftCiphers)
	if err != nil {
		log.Err(err).
			Str("func", "draftRepository.updateMultipleCiphers").
			Int("updates_count", len(updates)).
			Msg("failed to prepare statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for idx, update := range updates {
		log.Debug().
			Str("func", "draftRepository.updateMultipleCiphers").
			Int("iteration", idx+1).
			Int("total", len(updates)).
			Str("draft_id", update.ID).
			Msg("updating draft ciphers in transaction")

		result, execErr := stmt.ExecContext(ctx,
			update.CipherContent,
			update.CipherMeta,
			update.IV,
			update.ID,
			userID,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "draftRepository.updateMultipleCiphers").
				Int("iteration", idx+1).
				Str("draft_id", update.ID).
				Msg("failed to execute prepared statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		rowsAffected, _ := result.RowsAffected()
		if rowsAffected == 0 {
			log.Warn().
				Str("func", "draftRepository.updateMultipleCiphers").
				Int("iteration", idx+1).
				Str("draft_id", update.ID).
				Msg("record not found")
			return fmt.Errorf("failed to update draft at index %d: %w", idx, ErrDraftNotFound)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "draftRepository.updateMultipleCiphers").
			Int("updates_count", len(updates)).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "draftRepository.updateMultipleCiphers").
		Int("updates_count", len(updates)).
		Msg("successfully updated multiple draft records")

	return nil
}

// SoftDelete marks the given drafts as deleted while retaining the rows so
// that a later password rotation still re-encrypts them.
//
// Returns [ErrDraftNotFound] when none of the requested rows exist.
func (d *draftRepository) SoftDelete(ctx context.Context, userID string, draftIDs ...string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSoftDeleteQuery(userID, draftIDs)
	if err != nil {
		log.Err(err).
			Str("func", "draftRepository.SoftDelete").
			Str("user_id", userID).
			Msg("failed to build soft delete query")
		return err
	}

	result, execErr := d.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "draftRepository.SoftDelete").
			Str("user_id", userID).
			Int("ids_count", len(draftIDs)).
			Msg("failed to execute soft delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "draftRepository.SoftDelete").
			Str("user_id", userID).
			Msg("no draft rows matched")
		return ErrDraftNotFound
	}

	return nil
}

// Purge permanently removes the given draft rows.
//
// Returns [ErrDraftNotFound] when none of the requested rows exist.
func (d *draftRepository) Purge(ctx context.Context, userID string, draftIDs ...string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildPurgeQuery(userID, draftIDs)
	if err != nil {
		log.Err(err).
			Str("func", "draftRepository.Purge").
			Str("user_id", userID).
			Msg("failed to build purge query")
		return err
	}

	result, execErr := d.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "draftRepository.Purge").
			Str("user_id", userID).
			Int("ids_count", len(draftIDs)).
			Msg("failed to execute purge query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "draftRepository.Purge").
			Str("user_id", userID).
			Msg("no draft rows matched")
		return ErrDraftNotFound
	}

	return nil
}
