package events

import "github.com/dshills/notefold/internal/event"

// Document event topics.
const (
	// TopicDocumentOpened is published after a document is opened and
	// registered with the session.
	TopicDocumentOpened event.Topic = "document.opened"

	// TopicDocumentClosed is published after a document is closed.
	TopicDocumentClosed event.Topic = "document.closed"

	// TopicDocumentActivated is published when a document becomes the
	// active view.
	TopicDocumentActivated event.Topic = "document.activated"
)

// DocumentOpened is published after a document is opened.
type DocumentOpened struct {
	// DocumentID is the unique document identifier.
	DocumentID string

	// Path is the file path the document was read from.
	Path string

	// LineCount is the number of lines at open time.
	LineCount int

	// Tags are the tags extracted from the document's metadata, used by
	// the automatic fold gate.
	Tags []string
}

// DocumentClosed is published after a document is closed.
type DocumentClosed struct {
	// DocumentID is the unique document identifier.
	DocumentID string

	// Path is the file path the document was read from.
	Path string
}

// DocumentActivated is published when a document becomes the active view.
type DocumentActivated struct {
	// DocumentID is the unique document identifier.
	DocumentID string

	// Path is the file path the document was read from.
	Path string
}
