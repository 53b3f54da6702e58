// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer the client uses to talk to the
// quietpage server.
//
// The primary abstraction is [ServerAdapter], which decouples the client-side
// crypto core from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// The draft, salt, and credential method sets mirror the collaborator
// interfaces the crypto core consumes (service.DraftStore, service.SaltStore,
// service.IdentityProvider), so one adapter instance serves all three roles.
// HTTP status codes are mapped by mapHTTPError to the store-level sentinels
// the core already understands: a 404 on the salt endpoint surfaces as
// store.ErrSaltNotFound exactly as it would from a local repository.
package adapter

import (
	"context"

	"github.com/quietpage/quietpage/models"
)

// ServerAdapter defines transport-agnostic communication with the quietpage
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to sentinel values
// usable with [errors.Is].
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account on the server. On success it stores the
	// returned bearer token via SetToken and returns the server-side user
	// record with its issued UserID.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates against the server. On success it stores the
	// returned bearer token via SetToken and returns the server-side user
	// record.
	Login(ctx context.Context, user models.User) (models.User, error)

	// UpdatePassword changes the account credential. Used by password
	// rotation after the full corpus has been downloaded and verified.
	UpdatePassword(ctx context.Context, userID, currentPassword, newPassword string) error

	// SaveDraft persists one newly encrypted draft.
	SaveDraft(ctx context.Context, draft models.EncryptedDraft) error

	// GetAllDrafts fetches the caller's full draft corpus, soft-deleted
	// records included. The server scopes the result by the bearer token;
	// userID is kept for interface symmetry with local stores.
	GetAllDrafts(ctx context.Context, userID string) ([]models.EncryptedDraft, error)

	// UpdateDraftCiphers replaces the ciphertext triple of one draft.
	UpdateDraftCiphers(ctx context.Context, userID string, update models.CipherUpdate) error

	// DeleteDraft soft-deletes a draft.
	DeleteDraft(ctx context.Context, userID, draftID string) error

	// PurgeDraft permanently removes a draft.
	PurgeDraft(ctx context.Context, userID, draftID string) error

	// GetSalt fetches the caller's key-derivation salt. Returns
	// store.ErrSaltNotFound (wrapped) when none is registered yet.
	GetSalt(ctx context.Context, userID string) (models.SaltRecord, error)

	// InsertSalt registers the caller's salt. Returns
	// store.ErrSaltAlreadyExists (wrapped) if a concurrent first login won
	// the insert race.
	InsertSalt(ctx context.Context, record models.SaltRecord) error

	// ReplaceSalt overwrites the caller's salt during rotation.
	ReplaceSalt(ctx context.Context, record models.SaltRecord) error
}
