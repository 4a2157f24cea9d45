package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when the session id is unknown.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrTodoNotFound is returned when the todo does not exist or belongs to
	// another user.
	ErrTodoNotFound = errors.New("todo was not found")

	// ErrNoteNotFound is returned when the note does not exist or belongs to
	// another user.
	ErrNoteNotFound = errors.New("note was not found")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRows is returned when scanning result rows fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned for a driver without migrations.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
