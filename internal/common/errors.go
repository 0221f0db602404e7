// Package common defines shared sentinel errors used across the storage and
// monitoring layers of shelfwatch. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Parse failure: a stored record line does not have the expected shape.
	ErrMalformedRecord = errors.New("malformed record")

	// Validation failure: an item was constructed with missing or
	// out-of-range fields.
	ErrInvalidItem = errors.New("invalid item")
)
