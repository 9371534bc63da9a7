package domain

import "errors"

var (
	// ErrInvalidInput is returned for malformed user-supplied values
	// (non-integer age, empty handle, unknown gender). Always recoverable
	// by re-prompting.
	ErrInvalidInput = errors.New("invalid input")

	// ErrProfileNotFound is returned when a referenced profile does not exist.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileAlreadyExists is returned on a uniqueness violation during
	// registration. Callers must fetch the existing record before reporting it.
	ErrProfileAlreadyExists = errors.New("profile already exists")

	// ErrActivityNotFound is returned when no profile has ever recorded a
	// matching attempt (cold start).
	ErrActivityNotFound = errors.New("activity record not found")

	// ErrNoCandidates is returned when every ranked candidate has already
	// been shown to the viewer.
	ErrNoCandidates = errors.New("no eligible candidates")

	// ErrStorageUnavailable wraps transient storage failures (timeouts,
	// broken connections). Surfaced to the user as a transient error,
	// never fatal for the process.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
