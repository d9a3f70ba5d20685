package zipper

import "errors"

// Construction errors
var (
	// ErrEmptySequence indicates that a zipper cannot be built because the
	// input sequence has no elements, or that deleting the focus would leave
	// nothing to focus.
	ErrEmptySequence = errors.New("sequence is empty")
)

// Navigation errors
var (
	// ErrAtBoundary indicates a move past the first or last position.
	ErrAtBoundary = errors.New("move past sequence boundary")

	// ErrOutOfRange indicates a seek to an offset outside the sequence.
	ErrOutOfRange = errors.New("offset out of range")
)

// Search errors
var (
	// ErrNoMatch indicates that a scan exhausted every position without the
	// predicate holding.
	ErrNoMatch = errors.New("no matching position")
)
