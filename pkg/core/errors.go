package core

import "errors"

// Failure conditions reported by the store. None of these are fatal: the
// worst case for a caller is "the action did not happen".
var (
	// ErrThrottled signals a creation attempted before CreateCooldown
	// elapsed since the last successful creation.
	ErrThrottled = errors.New("note creation throttled")

	// ErrCapacityExceeded signals a creation attempted at the MaxNotes ceiling.
	ErrCapacityExceeded = errors.New("note limit reached")

	// ErrContentTooLong signals an update that would push content past
	// MaxContentLength. The prior content is retained.
	ErrContentTooLong = errors.New("note content exceeds limit")

	// ErrNotInitialized signals a mutation attempted before Initialize ran.
	ErrNotInitialized = errors.New("store is not initialized")

	// ErrUnknownNote signals a manual selection of an id not present in the
	// collection. Update and Delete of unknown ids are silent no-ops instead,
	// since those are benign races with other contexts.
	ErrUnknownNote = errors.New("unknown note")
)
