package trivia

import "errors"

var (
	// ErrNotFound signals that no matching resource exists: an unknown
	// question or category id, an empty page, or zero search matches.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput signals missing or empty required fields.
	ErrInvalidInput = errors.New("invalid input")
)
