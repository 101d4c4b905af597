package configuration

import "errors"

var (
	// ErrInvalidValue occurs when a configuration key holds a value that
	// cannot be parsed into its expected type.
	ErrInvalidValue = errors.New("invalid configuration value")

	// ErrOutOfRange occurs when a configuration key holds a parseable value
	// that is outside of its permitted range.
	ErrOutOfRange = errors.New("configuration value out of range")

	// ErrMisaligned occurs when the fallback buffer size is not an exact
	// multiple of the default alignment.
	ErrMisaligned = errors.New("fallback buffer size is not a multiple of the default alignment")
)
