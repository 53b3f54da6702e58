package service

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock -exclude_interfaces=DraftServiceWrapper

import (
	"context"

	"github.com/quietpage/quietpage/models"
)

// DraftService is the server-side draft API. It only ever sees ciphertext:
// content and metadata arrive encrypted, with the IV the client used.
type DraftService interface {
	UploadDrafts(ctx context.Context, drafts ...models.EncryptedDraft) error

	DownloadAllDrafts(ctx context.Context, userID string) ([]models.EncryptedDraft, error)

	UpdateDraftCiphers(ctx context.Context, userID string, updates ...models.CipherUpdate) error

	DeleteDrafts(ctx context.Context, userID string, draftIDs ...string) error
	PurgeDrafts(ctx context.Context, userID string, draftIDs ...string) error
}

// SaltService manages the per-user KDF salt registry.
type SaltService interface {
	GetSalt(ctx context.Context, userID string) (models.SaltRecord, error)
	RegisterSalt(ctx context.Context, record models.SaltRecord) error
	ReplaceSalt(ctx context.Context, record models.SaltRecord) error
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// DraftServiceWrapper defines middleware composition for DraftService.
// Implementations wrap an existing DraftService to add behavior such as
// logging or validating.
type DraftServiceWrapper interface {
	Wrap(DraftService) DraftService // returns a decorated DraftService applying additional behavior
}
