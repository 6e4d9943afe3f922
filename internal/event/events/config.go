package events

import "github.com/dshills/notefold/internal/event"

// Config event topics.
const (
	// TopicConfigChanged is published when a setting changes.
	TopicConfigChanged event.Topic = "config.changed"

	// TopicConfigReloaded is published when the config file is reloaded
	// from disk.
	TopicConfigReloaded event.Topic = "config.reloaded"
)

// ConfigChanged is published when a setting changes.
type ConfigChanged struct {
	// Path is the dot-notation path to the setting (e.g., "fold.level").
	Path string

	// OldValue is the previous value.
	OldValue any

	// NewValue is the new value.
	NewValue any
}

// ConfigReloaded is published when the config file is reloaded from disk.
type ConfigReloaded struct {
	// Path is the config file path.
	Path string

	// Changed lists the dot-notation paths whose values changed.
	Changed []string
}
