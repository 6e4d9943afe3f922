package command

import "fmt"

// Status indicates the outcome of an action.
type Status uint8

const (
	// StatusOK indicates successful execution.
	StatusOK Status = iota

	// StatusNoOp indicates the action had no effect.
	StatusNoOp

	// StatusError indicates an error occurred.
	StatusError
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNoOp:
		return "no-op"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the outcome of handling an action.
type Result struct {
	// Status indicates how the action went.
	Status Status

	// Error holds the failure for StatusError results.
	Error error

	// Message is an optional status line message.
	Message string

	// Redraw requests a full redraw.
	Redraw bool

	// Quit requests application shutdown.
	Quit bool
}

// IsOK reports whether the action succeeded.
func (r Result) IsOK() bool {
	return r.Status == StatusOK
}

// IsError reports whether the action failed.
func (r Result) IsError() bool {
	return r.Status == StatusError
}

// Success creates a successful result.
func Success() Result {
	return Result{Status: StatusOK}
}

// Successf creates a successful result with a formatted message.
func Successf(format string, args ...any) Result {
	return Result{Status: StatusOK, Message: fmt.Sprintf(format, args...)}
}

// NoOp creates a result for an action that had no effect.
func NoOp() Result {
	return Result{Status: StatusNoOp}
}

// NoOpf creates a no-op result with a formatted message.
func NoOpf(format string, args ...any) Result {
	return Result{Status: StatusNoOp, Message: fmt.Sprintf(format, args...)}
}

// Error creates an error result.
func Error(err error) Result {
	return Result{Status: StatusError, Error: err}
}

// Errorf creates an error result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Result{Status: StatusError, Error: fmt.Errorf(format, args...)}
}

// WithMessage returns a copy of the result with the given message.
func (r Result) WithMessage(msg string) Result {
	r.Message = msg
	return r
}

// WithRedraw returns a copy of the result requesting a redraw.
func (r Result) WithRedraw() Result {
	r.Redraw = true
	return r
}

// WithQuit returns a copy of the result requesting shutdown.
func (r Result) WithQuit() Result {
	r.Quit = true
	return r
}
