// Package migrations embeds the schema of the fleet store and applies it
// with goose. Every supported database driver has its own directory of
// migrations because SQLite and PostgreSQL differ in key and float types.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	// ErrNilDB is returned when Migrate is called without a connection.
	ErrNilDB = errors.New("db is nil")

	// ErrUnsupportedDriver is returned for a driver with no migration set.
	ErrUnsupportedDriver = errors.New("unsupported migration driver")
)

// goose keeps dialect and base FS in package globals.
var gooseMu sync.Mutex

// dirs maps a database/sql driver name to its goose dialect and the
// directory holding its migrations.
var dirs = map[string]struct {
	dialect goose.Dialect
	dir     string
}{
	"pgx":     {dialect: goose.DialectPostgres, dir: "postgres"},
	"sqlite3": {dialect: goose.DialectSQLite3, dir: "sqlite"},
}

// Migrate applies all pending migrations for driver ("pgx" or "sqlite3").
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return ErrNilDB
	}

	target, ok := dirs[driver]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(string(target.dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, target.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
