package store

import (
	"context"
	"fmt"

	"github.com/quietpage/quietpage/internal/config"
	"github.com/quietpage/quietpage/internal/logger"
)

// ClientStorages groups the client-side repositories. Today that is just the
// SQLite mirror of encrypted drafts.
type ClientStorages struct {
	DraftRepository LocalDraftRepository
}

// NewClientStorages opens the SQLite mirror named by cfg.DB.DSN (creating the
// file on first run), applies pending migrations, and wires the draft
// repository on top.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		DraftRepository: NewLocalDraftRepository(db, logger),
	}, nil
}
