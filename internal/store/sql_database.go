package store

import (
	"database/sql"

	"github.com/quietpage/quietpage/internal/logger"
)

// DB wraps an open SQL connection together with its error classifier and a
// dialect-specific migration routine. Both the PostgreSQL server store and
// the SQLite client cache produce this type.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	migrate func(*sql.DB) error
}

// Migrate applies pending schema migrations for this connection's dialect.
func (db *DB) Migrate() error {
	return db.migrate(db.DB)
}
