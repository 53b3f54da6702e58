package store

import "errors"

// Domain errors surfaced to the service layer. Handlers translate these into
// HTTP status codes; everything else is treated as an internal failure.
var (
	// ErrLoginAlreadyExists indicates a registration attempt with a login
	// that is already taken.
	ErrLoginAlreadyExists = errors.New("user with given login already exists")

	// ErrNoUserWasFound indicates a lookup for a user that does not exist.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDraftNotSaved indicates an INSERT that affected no rows.
	ErrDraftNotSaved = errors.New("draft was not saved")

	// ErrDraftNotFound indicates an update or delete that targeted a
	// non-existent draft row.
	ErrDraftNotFound = errors.New("draft not found")

	// ErrSaltNotFound indicates the user has no salt row yet. First-login
	// flows rely on this being distinguishable from a transport failure.
	ErrSaltNotFound = errors.New("salt not found")

	// ErrSaltAlreadyExists indicates a second salt registration for the same
	// user, typically a concurrent first-login losing the insert race.
	ErrSaltAlreadyExists = errors.New("salt already registered")
)

// Low-level SQL errors wrapped around driver failures.
var (
	ErrBuildingSQLQuery     = errors.New("error building SQL query")
	ErrExecutingQuery       = errors.New("error executing query")
	ErrBeginningTransaction = errors.New("error beginning transaction")
	ErrCommitingTransaction = errors.New("error commiting transaction")
	ErrPreparingStatement   = errors.New("error preparing statement")
	ErrExecutingStatement   = errors.New("error executing statement")
	ErrScanningRow          = errors.New("error scanning row")
	ErrScanningRows         = errors.New("error scanning rows")
)
