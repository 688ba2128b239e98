package store

import "errors"

var (
	// ErrNotFound is returned when the session does not exist.
	ErrNotFound = errors.New("session not found")

	// ErrStaleStatus is returned by SetStatus when expected_prev no longer
	// matches the current status (another worker advanced it first).
	ErrStaleStatus = errors.New("stale session status")

	// ErrTerminalState is returned when writing an artifact against a
	// session that already reached a terminal successful state.
	ErrTerminalState = errors.New("session is in a terminal state")

	// ErrDuplicateArtifact is returned when an artifact insert violates the
	// one-current-artifact-per-kind constraint. Callers reload and treat the
	// kind as complete.
	ErrDuplicateArtifact = errors.New("current artifact already exists")
)
