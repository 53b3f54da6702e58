package store

import (
	"context"
	"fmt"

	"github.com/quietpage/quietpage/internal/config"
	"github.com/quietpage/quietpage/internal/logger"
)

// Storages groups all server-side repositories into a single value that can
// be passed to the service layer.
type Storages struct {
	UserRepository  UserRepository
	DraftRepository DraftRepository
	SaltRepository  SaltRepository
}

// NewStorages initialises the server storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens a PostgreSQL connection to the DSN specified in cfg.DB.DSN.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories
//     sharing the single connection pool.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, logger),
		DraftRepository: NewDraftRepository(db, logger),
		SaltRepository:  NewSaltRepository(db, logger),
	}, nil
}
