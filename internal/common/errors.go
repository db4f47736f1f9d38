// Package common defines shared constants and sentinel errors used across
// the time keeper. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors. An operation that fails validation performs no writes.
	ErrValidation            = errors.New("validation error")
	ErrRequiredField         = errors.New("required field is empty")
	ErrBadClock              = errors.New("malformed time, expected HH:MM")
	ErrCheckOutBeforeCheckIn = errors.New("checkout time must be after checkin")

	// ErrSuffixOverflow is returned when a (first, last) name pair already has
	// 100 allocated ledger keys. The suffix is fixed at two digits; widening it
	// would break descending-sort allocation for existing keys.
	ErrSuffixOverflow = errors.New("ledger key suffix overflow")
)
