package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates no post matched the query.
	// It is a normal outcome for adjacent and boundary lookups.
	ErrNotFound = errors.New("not found")

	// ErrNoCurrentPost indicates the view carries no current post.
	ErrNoCurrentPost = errors.New("no current post")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedDriver indicates an unknown storage or cache driver name.
	ErrUnsupportedDriver = errors.New("unsupported driver")
)
