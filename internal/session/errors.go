package session

import "errors"

// Session errors
var (
	// ErrNotOpen is returned when an operation names a document that is
	// not open in the session.
	ErrNotOpen = errors.New("document not open")

	// ErrNothingToFold is returned by ToggleFold when no enclosing
	// block around the line can be folded.
	ErrNothingToFold = errors.New("nothing to fold here")
)
