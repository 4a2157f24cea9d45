package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result of [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified is any error the repositories have no special handling for.
	Unclassified ErrorClassification = iota

	// UniqueViolation is a failed UNIQUE or PRIMARY KEY constraint.
	UniqueViolation
)

// ErrorClassificator maps driver specific errors onto [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error code returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. If err is nil or is not a
// PostgreSQL driver error, [Unclassified] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Unclassified
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	}

	return Unclassified
}
