package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/fleet-dispatch/internal/config"
	"github.com/MKhiriev/fleet-dispatch/internal/logger"
	"github.com/MKhiriev/fleet-dispatch/migrations"
)

// maxAttempts bounds how often a write is tried when the classifier marks
// its failure as [Retryable].
const maxAttempts = 3

// retryBackoff is the pause before the n-th retry, multiplied by n.
var retryBackoff = 50 * time.Millisecond

// DB wraps a *sql.DB together with the SQL dialect spoken by its driver.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an open connection. driver must be [config.DriverPostgres] or
// [config.DriverSQLite]; it selects the placeholder format and the error
// classifier.
func NewDB(conn *sql.DB, driver string, log *logger.Logger) (*DB, error) {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case config.DriverPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	case config.DriverSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, driver)
	}

	return db, nil
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, cfg.Driver)
	}
}

// Driver returns the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded schema migrations for the connection's driver.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver)
}

// withRetry runs fn until it succeeds, returns a non-retryable error, or
// maxAttempts is reached.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}

		if db.errorClassificator.Classify(err) != Retryable || attempt == maxAttempts {
			return err
		}

		logger.FromContext(ctx).Warn().
			Err(err).
			Int("attempt", attempt).
			Msg("retrying database operation")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}

	return err
}

// constraintError maps unique and foreign-key violations to the store's
// sentinels. Other errors are wrapped with fallback.
func (db *DB) constraintError(err error, fallback error) error {
	switch {
	case db.errorClassificator.IsUniqueViolation(err):
		return ErrLoginAlreadyExists
	case db.errorClassificator.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %w", ErrReferencedRecordMissing, err)
	default:
		return fmt.Errorf("%w: %w", fallback, err)
	}
}

// queryRow scans the single row returned by query into dest. A missing row is
// reported as [ErrRecordNotFound].
func (db *DB) queryRow(ctx context.Context, query string, args []any, dest ...any) error {
	return db.withRetry(ctx, func() error {
		err := db.QueryRowContext(ctx, query, args...).Scan(dest...)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRecordNotFound
		}
		return err
	})
}

// execOne runs a statement that must affect exactly one row. Zero affected
// rows is reported as [ErrRecordNotFound].
func (db *DB) execOne(ctx context.Context, query string, args []any) error {
	return db.withRetry(ctx, func() error {
		res, err := db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrRecordNotFound
		}
		return nil
	})
}

// inTx runs fn inside a transaction that is committed only if fn succeeds.
// The whole transaction is retried on retryable failures.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return db.withRetry(ctx, func() error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
		}
		defer tx.Rollback()

		if err = fn(tx); err != nil {
			return err
		}

		if err = tx.Commit(); err != nil {
			return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
		}
		return nil
	})
}
