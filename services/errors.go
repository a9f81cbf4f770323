package services

import "errors"

// ErrNotFound covers both "no such record" and "record owned by someone
// else" so that ids cannot be probed across users.
var ErrNotFound = errors.New("not found")

// ValidationError names the field that failed so the caller can surface it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
