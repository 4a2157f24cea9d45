// Package migrations embeds the goose migrations of the taskflow server
// database, one directory per SQL dialect.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Migrate brings db up to the latest schema. driver is the database/sql
// driver name the connection was opened with ("sqlite3" or "pgx").
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dialect, dir, err := dialectFor(driver)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err = goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err = goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dialectFor(driver string) (dialect, dir string, err error) {
	switch driver {
	case "sqlite3":
		return "sqlite3", "sqlite", nil
	case "pgx", "postgres":
		return "pgx", "postgres", nil
	}
	return "", "", fmt.Errorf("unsupported driver %q", driver)
}
