package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/quietpage/quietpage/internal/logger"
	"github.com/quietpage/quietpage/models"
)

// saltRepository is the PostgreSQL-backed implementation of [SaltRepository].
// The "user_salts" table carries a uniqueness constraint on user_id, so the
// at-most-one-salt-per-user invariant is enforced by the database rather than
// by application logic.
type saltRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSaltRepository constructs a [SaltRepository] backed by the provided
// database connection and logger.
func NewSaltRepository(db *DB, logger *logger.Logger) SaltRepository {
	logger.Debug().Msg("creating salt repository")
	return &saltRepository{
		db:     db,
		logger: logger,
	}
}

// Get returns the salt row for the given user.
//
// A missing row is reported as [ErrSaltNotFound]: first-login flows treat it
// as an expected condition, not a failure.
func (r *saltRepository) Get(ctx context.Context, userID string) (models.SaltRecord, error) {
	log := logger.FromContext(ctx)

	var record models.SaltRecord
	row := r.db.QueryRowContext(ctx, getSaltByUserID, userID)

	if err := row.Err(); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SaltRecord{}, ErrSaltNotFound
		}

		log.Err(err).Str("func", "*saltRepository.Get").Str("user_id", userID).Msg("error: row is nil")
		return models.SaltRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&record.UserID, &record.Salt, &record.CreatedAt, &record.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SaltRecord{}, ErrSaltNotFound
		}

		log.Err(err).Str("func", "*saltRepository.Get").Str("user_id", userID).Msg("error: scanning error")
		return models.SaltRecord{}, err
	}

	return record, nil
}

// Insert creates the salt row for a user.
//
// A concurrent first-login that already inserted one trips the uniqueness
// constraint and is reported as [ErrSaltAlreadyExists]; the caller re-fetches
// the winning salt instead of overwriting it.
func (r *saltRepository) Insert(ctx context.Context, record models.SaltRecord) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, insertSalt, record.UserID, record.Salt)
	if err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Warn().
				Str("func", "*saltRepository.Insert").
				Str("user_id", record.UserID).
				Msg("salt row already present, lost insert race")
			return ErrSaltAlreadyExists
		}

		log.Err(err).Str("func", "*saltRepository.Insert").Str("user_id", record.UserID).Msg("failed to insert salt")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Replace overwrites the user's salt in place. Only password rotation calls
// this, after every draft has been re-encrypted under the new key.
//
// Returns [ErrSaltNotFound] if the user has no salt row to replace.
func (r *saltRepository) Replace(ctx context.Context, record models.SaltRecord) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, replaceSalt, record.Salt, record.UserID)
	if err != nil {
		log.Err(err).Str("func", "*saltRepository.Replace").Str("user_id", record.UserID).Msg("failed to replace salt")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Warn().
			Str("func", "*saltRepository.Replace").
			Str("user_id", record.UserID).
			Msg("no salt row was updated")
		return ErrSaltNotFound
	}

	return nil
}
