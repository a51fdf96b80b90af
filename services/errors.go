package services

import "errors"

var (
	// ErrNotFound translates to a 404 at the controller.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden covers wrong-role and wrong-deliverer failures.
	ErrForbidden = errors.New("not authorized to perform this action")

	// ErrConflict means a conditional status write lost the race: the stored
	// status no longer matched the expected prior state.
	ErrConflict = errors.New("task status changed concurrently, re-read and retry")

	// ErrInvalidInput wraps field-level validation failures (400).
	ErrInvalidInput = errors.New("invalid input")
)
