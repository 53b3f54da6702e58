// SPDX-License-Identifier: Apache-2.0

package store

const (
	clientSaveDraft = `
		INSERT OR REPLACE INTO drafts (
			id,
			user_id,
			ciphertext_content,
			ciphertext_metadata,
			iv,
			deleted
		) VALUES (?, ?, ?, ?, ?, ?);`

	clientGetAllDrafts = `
		SELECT
			id,
			user_id,
			ciphertext_content,
			ciphertext_metadata,
			iv,
			created_at,
			updated_at,
			deleted
		FROM drafts
		WHERE user_id = ?;`

	clientUpdateDraftCiphers = `
		UPDATE drafts SET
			ciphertext_content  = ?,
			ciphertext_metadata = ?,
			iv                  = ?,
			updated_at          = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?;`

	clientMarkDraftDeleted = `
		UPDATE drafts SET
			deleted    = 1,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?;`

	clientPurgeDraft = `
		DELETE FROM drafts
		WHERE id = ? AND user_id = ?;`

	clientClearUserDrafts = `
		DELETE FROM drafts
		WHERE user_id = ?;`
)
