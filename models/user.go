package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the stable unique identifier of the user (UUID string),
	// issued by the server at registration and carried in session tokens.
	UserID string `json:"user_id,omitempty"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Password carries the user's password on register, login, and
	// credential-update requests. The server uses it only to compute and
	// compare the stored verifier; it never participates in encryption,
	// which happens client-side before any request is made.
	Password string `json:"password,omitempty"`

	// PasswordHash is the server-side salted verifier of Password.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
