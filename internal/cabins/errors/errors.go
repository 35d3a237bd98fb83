package errors

import "errors"

var (
	ErrNotFound = errors.New("cabin not found")
)
