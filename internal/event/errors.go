package event

import "errors"

// Errors returned by bus operations.
var (
	ErrBusNotRunning        = errors.New("event bus is not running")
	ErrBusAlreadyRunning    = errors.New("event bus is already running")
	ErrInvalidEvent         = errors.New("event does not provide a topic")
	ErrInvalidTopic         = errors.New("invalid topic pattern")
	ErrNilHandler           = errors.New("handler cannot be nil")
	ErrInvalidSubscription  = errors.New("invalid subscription")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)
