package events

import "github.com/dshills/notefold/internal/event"

// Fold event topics.
const (
	// TopicFoldApplied is published after a region is collapsed.
	TopicFoldApplied event.Topic = "fold.applied"

	// TopicFoldRemoved is published after a single region is expanded.
	TopicFoldRemoved event.Topic = "fold.removed"

	// TopicFoldCleared is published after all folds in a view are removed.
	TopicFoldCleared event.Topic = "fold.cleared"
)

// FoldApplied is published after a region is collapsed.
type FoldApplied struct {
	// DocumentID identifies the document the fold belongs to.
	DocumentID string

	// Anchor is the line that stays visible.
	Anchor int

	// Last is the final concealed line, inclusive.
	Last int

	// HiddenLines is the number of lines the fold conceals.
	HiddenLines int
}

// FoldRemoved is published after a single region is expanded.
type FoldRemoved struct {
	// DocumentID identifies the document the fold belonged to.
	DocumentID string

	// Anchor is the line the fold was anchored at.
	Anchor int

	// Last was the final concealed line, inclusive.
	Last int
}

// FoldCleared is published after all folds in a view are removed.
type FoldCleared struct {
	// DocumentID identifies the document.
	DocumentID string

	// Removed is the number of regions that were expanded.
	Removed int
}
