package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-taskflow/internal/config"
	"github.com/MKhiriev/go-taskflow/internal/logger"
	"github.com/MKhiriev/go-taskflow/migrations"
)

const (
	driverSQLite   = "sqlite3"
	driverPostgres = "pgx"
)

// DB is an open database handle together with the SQL dialect details the
// repositories need: the driver name, a squirrel builder with the matching
// placeholder format, and the driver error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens PostgreSQL when cfg.DSN is a postgres:// or postgresql://
// URL and SQLite otherwise.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case driverPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Migrate applies the embedded migrations of the connected dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == UniqueViolation
}
