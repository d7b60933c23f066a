package omdb

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when OMDb reports no match for a title or id
// lookup (Response "False" with an error payload).
type NotFoundError struct {
	Key     string
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("movie not found: %s (%s)", e.Key, e.Message)
	}
	return fmt.Sprintf("movie not found: %s", e.Key)
}

// TransientError is returned when the upstream call itself fails: transport
// errors, non-200 responses and undecodable bodies.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: upstream request failed: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsTransient reports whether err is a TransientError.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
