package store

import (
	"errors"

	"github.com/MKhiriev/fleet-dispatch/models"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a lookup or an update targets an id
	// that has no row. It is the value validators expect from a RecordLookup.
	ErrRecordNotFound = models.ErrRecordNotFound

	// ErrLoginAlreadyExists is returned when a user row cannot be inserted or
	// renamed because another user already holds the same login.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrReferencedRecordMissing is returned when a foreign key points to a
	// row that was deleted between validation and the write.
	ErrReferencedRecordMissing = errors.New("referenced record is missing")

	// ErrUnknownDialect is returned when a connection is requested for a
	// driver name other than "pgx" or "sqlite3".
	ErrUnknownDialect = errors.New("unknown database dialect")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
