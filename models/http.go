package models

// ChangePasswordRequest is the credential-update payload accepted by the
// identity endpoint. It carries passwords only; all ciphertext migration is
// performed client-side before or after this call.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UploadRequest is the draft upload payload. Hash is the hex-encoded HMAC of
// the JSON-serialized draft list, checked by the integrity middleware before
// the body reaches the handler.
type UploadRequest struct {
	Drafts []EncryptedDraft `json:"drafts"`
	Hash   string           `json:"hash,omitempty"`
}

// CipherUpdateRequest is the bulk re-encryption payload sent during password
// rotation: every draft's replacement ciphertext triple keyed by draft ID.
// Hash carries the same integrity HMAC as [UploadRequest].
type CipherUpdateRequest struct {
	Updates []CipherUpdate `json:"updates"`
	Hash    string         `json:"hash,omitempty"`
}

// DeleteRequest lists the draft identifiers targeted by a soft-delete or a
// purge call.
type DeleteRequest struct {
	DraftIDs []string `json:"draft_ids"`
}

// DownloadResponse is the full-corpus draft listing returned by the vault
// API, soft-deleted records included.
type DownloadResponse struct {
	Drafts []EncryptedDraft `json:"drafts"`
	Length int              `json:"length"`
}

// ErrorResponse is the uniform error body returned by the vault API.
type ErrorResponse struct {
	Error string `json:"error"`
}
