package event

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Topic is a hierarchical event name with dot-separated segments, such as
// "document.opened".
type Topic string

// String returns the topic as a plain string.
func (t Topic) String() string {
	return string(t)
}

// Match reports whether the topic matches a subscription pattern. A
// pattern is an exact topic, "*" for every topic, or a prefix ending in
// ".*" that matches any topic below the prefix ("document.*" matches
// "document.opened").
func (t Topic) Match(pattern Topic) bool {
	if pattern == t || pattern == "*" {
		return true
	}
	if strings.HasSuffix(string(pattern), ".*") {
		prefix := strings.TrimSuffix(string(pattern), "*")
		return strings.HasPrefix(string(t), prefix)
	}
	return false
}

// Event represents an event in the system.
// Events are immutable once created.
type Event[T any] struct {
	// Type is the hierarchical event type (e.g., "document.opened").
	Type Topic

	// Payload contains the event-specific data.
	Payload T

	// Metadata contains standard event information.
	Metadata Metadata
}

// Metadata contains standard information attached to every event.
type Metadata struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies the module that published the event.
	Source string
}

// NewEvent creates a new event with the given type and payload.
func NewEvent[T any](eventType Topic, payload T, source string) Event[T] {
	return Event[T]{
		Type:    eventType,
		Payload: payload,
		Metadata: Metadata{
			ID:        uuid.NewString(),
			Timestamp: time.Now(),
			Source:    source,
		},
	}
}

// EventTopic returns the event's topic for type-erased handling.
func (e Event[T]) EventTopic() Topic {
	return e.Type
}

// EventMetadata returns the event's metadata for type-erased handling.
func (e Event[T]) EventMetadata() Metadata {
	return e.Metadata
}

// TopicProvider is implemented by types that can provide their topic.
type TopicProvider interface {
	EventTopic() Topic
}

// As extracts a typed event from a type-erased one. Handlers use it to
// recover the payload type they subscribed for.
func As[T any](event any) (Event[T], bool) {
	e, ok := event.(Event[T])
	return e, ok
}

// Is reports whether the type-erased event carries a payload of type T.
func Is[T any](event any) bool {
	_, ok := event.(Event[T])
	return ok
}

// Handler is the interface for event handlers.
type Handler interface {
	// Handle processes an event.
	// The event parameter is type-erased; handlers should type-assert.
	Handle(ctx context.Context, event any) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc func(ctx context.Context, event any) error

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(ctx context.Context, event any) error {
	return f(ctx, event)
}
