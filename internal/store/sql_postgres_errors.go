package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database operation is worth
// retrying.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// ErrorClassificator classifies driver errors into retryable and
// non-retryable categories.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier classifies PostgreSQL driver errors by SQLSTATE
// class.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a PostgreSQL error to a classification based on its
// SQLSTATE class:
//   - 08 (connection exceptions), 40 (transaction rollbacks) and
//     57 (operator intervention, e.g. shutdown) are transient — Retryable.
//   - 22 (data exceptions), 23 (integrity constraint violations) and
//     42 (syntax errors) will fail identically on retry — NonRetryable.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgerrcode.IsOperatorIntervention(pgErr.Code):
		return Retryable

	case pgerrcode.IsDataException(pgErr.Code),
		pgerrcode.IsIntegrityConstraintViolation(pgErr.Code),
		pgerrcode.IsSyntaxErrororAccessRuleViolation(pgErr.Code):
		return NonRetryable

	default:
		return NonRetryable
	}
}
