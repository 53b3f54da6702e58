package models

import "time"

// SaltRecord is the per-user key-derivation salt row. The salt is not a
// secret — it exists so that identical passwords derive different keys — and
// is stored base64-encoded next to the user's identity.
//
// A user has at most one active salt at any time. The row is immutable except
// during explicit password rotation, where it is replaced, never mutated in
// place.
type SaltRecord struct {
	UserID string `json:"user_id"`

	// Salt is the base64 encoding of 16 cryptographically random bytes.
	Salt string `json:"salt"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table associated with the
// SaltRecord model.
func (s SaltRecord) TableName() string {
	return "user_salts"
}
