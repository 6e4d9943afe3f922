// Package config manages notefold's persistent settings.
//
// Settings live in a single TOML file, by default under the XDG config
// home. Loading overlays the file over built-in defaults, so a config
// file only needs the keys it changes. Every setting is addressable by
// a dot-separated key ("fold.level", "editor.scroll_off"); Set validates
// the value, persists the file, and notifies subscribed observers.
//
// A Watcher reloads the file when it changes on disk, so edits made in
// another program take effect in a running session.
package config
