package store

import "errors"

// ErrSessionNotFound is returned by [SessionRepository.Load] when no session
// has been saved yet or the last one was deleted.
var ErrSessionNotFound = errors.New("session was not found")

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these so callers can tell a bad query from a failed
// round trip.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when the selected row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan session row")
)
