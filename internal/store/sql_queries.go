package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (user_id, login, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, created_at
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT user_id, login, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	updateUserPasswordHash = `UPDATE users
    SET password_hash = $1
    WHERE user_id = $2;`

	getSaltByUserID = `SELECT user_id, salt, created_at, updated_at
    FROM user_salts
    WHERE user_id = $1;`

	insertSalt = `INSERT INTO user_salts (user_id, salt)
    VALUES ($1, $2);`

	replaceSalt = `UPDATE user_salts
    SET salt = $1, updated_at = NOW()
    WHERE user_id = $2;`

	saveDraft = `INSERT INTO drafts (
			id,
			user_id,
			ciphertext_content,
			ciphertext_metadata,
			iv
		) VALUES ($1, $2, $3, $4, $5);`

	getAllUserDrafts = `SELECT id, user_id, ciphertext_content, ciphertext_metadata, iv, created_at, updated_at, deleted
		FROM drafts
		WHERE user_id = $1;`

	updateDraftCiphers = `UPDATE drafts
		SET ciphertext_content = $1, ciphertext_metadata = $2, iv = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5;`
)

// buildSoftDeleteQuery builds an UPDATE marking the given drafts deleted.
// squirrel expands the draft id slice into an IN clause with dollar
// placeholders.
func buildSoftDeleteQuery(userID string, draftIDs []string) (string, []any, error) {
	query, args, err := sq.Update("drafts").
		Set("deleted", true).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"id": draftIDs}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildPurgeQuery builds a DELETE permanently removing the given drafts.
func buildPurgeQuery(userID string, draftIDs []string) (string, []any, error) {
	query, args, err := sq.Delete("drafts").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"id": draftIDs}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
