package errors

import "errors"

var (
	ErrNotFound = errors.New("reservation not found")

	// ErrLockHeld means another request holds the cabin's booking lock.
	ErrLockHeld = errors.New("cabin booking lock already held")
)
