package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDuplicateUser is returned when an attempt to register a new user
	// fails because the username or the email is already taken. The two
	// cases are deliberately not distinguished so that callers cannot leak
	// which field collided.
	ErrDuplicateUser = errors.New("username or email already exists")

	// ErrUserNotFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrNoteNotFound is returned when a query, update or delete targets a
	// note id that does not exist in the database.
	ErrNoteNotFound = errors.New("no note was found")

	// ErrSessionNotFound is returned when a session lookup by token produces
	// an empty result set.
	ErrSessionNotFound = errors.New("no session was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
