package money

import "errors"

// Common money package errors
var (
	// ErrInvalidCurrencyCode is returned when a currency code is absent or
	// not exactly 3 characters long.
	ErrInvalidCurrencyCode = errors.New("currency code is not 3 characters long")

	// ErrSignMismatch is returned when the signs of the units and nanos
	// fields do not match.
	ErrSignMismatch = errors.New("signs of units and nanos do not match")

	// ErrNanosOutOfRange is returned when the nanos field is outside
	// [-999999999, 999999999].
	ErrNanosOutOfRange = errors.New("nanos must be between -999999999 and 999999999")

	// ErrCurrencyMismatch is returned when performing operations on money
	// with different currencies.
	ErrCurrencyMismatch = errors.New("mismatched currencies")

	// ErrPositiveOverflow is returned when a sum exceeds the largest
	// representable value and overflow is not allowed.
	ErrPositiveOverflow = errors.New("addition failed due to positive overflow")

	// ErrNegativeOverflow is returned when a sum exceeds the smallest
	// representable value and overflow is not allowed.
	ErrNegativeOverflow = errors.New("addition failed due to negative overflow")
)
