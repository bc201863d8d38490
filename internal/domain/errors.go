package domain

import "errors"

// Error taxonomy. Every validation failure wraps exactly one of these
// sentinels so callers can classify with errors.Is. All are raised
// before any partial side effect; nothing is retried internally.
var (
	// ErrInvalidType marks an input of the wrong shape or Go type.
	ErrInvalidType = errors.New("invalid type")

	// ErrInvalidValue marks a well-typed input with an unacceptable
	// value: unsupported locale or format, duplicate column, malformed
	// parameter, bad path.
	ErrInvalidValue = errors.New("invalid value")

	// ErrMissingResource marks an absent export target directory.
	ErrMissingResource = errors.New("missing resource")
)
