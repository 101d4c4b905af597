package filesystem

import "errors"

var (
	// ErrXattrTooLarge is an error that occurs when an extended attribute
	// retrieval still reports a too small buffer at the configured maximum.
	ErrXattrTooLarge = errors.New("extended attribute exceeds maximum buffer size")

	// ErrMalformedBlob is an error that occurs when an extended attribute
	// blob cannot be decoded.
	ErrMalformedBlob = errors.New("malformed extended attribute blob")
)
