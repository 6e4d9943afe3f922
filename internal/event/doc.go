// Package event provides the in-process publish/subscribe bus that wires
// the application together without direct dependencies between modules:
// the session announces opened documents, views announce fold activity,
// and the configuration system announces setting changes.
//
// Topics are hierarchical dot-separated names ("document.opened"). A
// subscription pattern is an exact topic, a prefix with a trailing "*"
// segment ("document.*"), or "*" for every topic.
//
// Delivery is synchronous by default: PublishSync runs matching handlers
// in the publisher's goroutine. Subscriptions created with WithAsync are
// served from a small worker pool through Publish and never block the
// publisher; when the queue is full the event is dropped and counted
// rather than blocking. Handler panics are isolated and counted.
package event
