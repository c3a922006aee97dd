package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should match with [errors.Is].
var (
	// ErrLoginAlreadyExists is returned when registering a user whose login
	// is already taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when a user lookup matches no record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrEntryNotFound is returned when a deletion targets an entry that
	// does not exist (or belongs to another user).
	ErrEntryNotFound = errors.New("entry was not found")

	// ErrUnsupportedDSN is returned when the configured DSN matches no
	// known database backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors, wrapped by repository methods when a
// SQL-level operation fails before any domain logic applies.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
