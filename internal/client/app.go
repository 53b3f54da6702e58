package client

import (
	"context"
	"fmt"

	"github.com/quietpage/quietpage/internal/adapter"
	"github.com/quietpage/quietpage/internal/config"
	"github.com/quietpage/quietpage/internal/logger"
	"github.com/quietpage/quietpage/internal/service"
	"github.com/quietpage/quietpage/internal/store"
	"github.com/quietpage/quietpage/internal/workers"
	"github.com/quietpage/quietpage/models"
)

// App is the headless client runtime. It wires the remote adapter, the local
// SQLite mirror, the crypto core, and the salt retry worker into one session
// lifecycle: authenticate, work with drafts, rotate the password, log out.
// The embedding UI drives it; this package ships no interface of its own.
type App struct {
	Services *service.ClientServices

	adapter  adapter.ServerAdapter
	saltJob  *workers.SaltRetryJob
	jobs     *workers.Workers
	logger   *logger.Logger

	userID string
}

// NewApp assembles the client runtime from the client configuration. The
// remote store leads and the SQLite mirror follows; reads fall back to the
// mirror when the server is unreachable.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	drafts := store.NewCachingDraftStore(serverAdapter, localStorage.DraftRepository, log)
	saltJob := workers.NewSaltRetryJob(serverAdapter, cfg.Workers.SaltRetryInterval, log)

	services := service.NewClientServices(drafts, serverAdapter, serverAdapter, saltJob, log)

	app := &App{
		Services: services,
		adapter:  serverAdapter,
		saltJob:  saltJob,
		jobs:     workers.NewWorkers(saltJob),
		logger:   log,
	}

	app.jobs.Run()

	return app, nil
}

// Register creates an account, then derives and stores the session key. A new
// account always takes the first-login path: a fresh salt is generated and
// registered with the server.
func (a *App) Register(ctx context.Context, login, password string) (models.User, error) {
	user, err := a.adapter.Register(ctx, models.User{Login: login, Password: password})
	if err != nil {
		return models.User{}, fmt.Errorf("register: %w", err)
	}

	if _, err = a.Services.KeyService.DeriveAndStoreKey(ctx, user.UserID, password); err != nil {
		return models.User{}, fmt.Errorf("derive session key: %w", err)
	}

	a.userID = user.UserID
	return user, nil
}

// Login authenticates and derives the session key from the server-stored
// salt.
func (a *App) Login(ctx context.Context, login, password string) (models.User, error) {
	user, err := a.adapter.Login(ctx, models.User{Login: login, Password: password})
	if err != nil {
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	if _, err = a.Services.KeyService.DeriveAndStoreKey(ctx, user.UserID, password); err != nil {
		return models.User{}, fmt.Errorf("derive session key: %w", err)
	}

	a.userID = user.UserID
	return user, nil
}

// UserID returns the identifier of the authenticated user, or an empty string
// outside a session.
func (a *App) UserID() string {
	return a.userID
}

// SaveDraft encrypts and persists a draft for the current session.
func (a *App) SaveDraft(ctx context.Context, draft models.Draft) (models.Draft, error) {
	return a.Services.DraftService.SaveDraft(ctx, a.userID, draft)
}

// LoadDrafts fetches and decrypts the current user's live drafts.
func (a *App) LoadDrafts(ctx context.Context) ([]models.Draft, error) {
	return a.Services.DraftService.LoadDrafts(ctx, a.userID)
}

// DeleteDraft soft-deletes a draft.
func (a *App) DeleteDraft(ctx context.Context, draftID string) error {
	return a.Services.DraftService.DeleteDraft(ctx, a.userID, draftID)
}

// PurgeDraft permanently removes a draft.
func (a *App) PurgeDraft(ctx context.Context, draftID string) error {
	return a.Services.DraftService.PurgeDraft(ctx, a.userID, draftID)
}

// ChangePassword runs the full password-rotation protocol for the current
// session. progress may be nil.
func (a *App) ChangePassword(ctx context.Context, currentPassword, newPassword string, progress service.ProgressFunc) (service.RotationResult, error) {
	return a.Services.Rotator.Rotate(ctx, a.userID, currentPassword, newPassword, progress)
}

// Logout wipes the session key and the bearer token. Ciphertext in the local
// mirror stays; it is useless without the key.
func (a *App) Logout() {
	a.Services.KeyService.ClearEncryptionKey()
	a.adapter.SetToken("")
	a.userID = ""
}

// Close ends the session and stops background jobs.
func (a *App) Close() {
	a.Logout()
	a.saltJob.Stop()
}
