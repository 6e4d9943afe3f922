package config

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/dshills/notefold/internal/fold"
)

// Settings mirrors the TOML config file.
type Settings struct {
	Fold    FoldSettings    `toml:"fold"`
	Editor  EditorSettings  `toml:"editor"`
	UI      UISettings      `toml:"ui"`
	Logging LoggingSettings `toml:"logging"`

	// Keys maps key names to action names, overlaid over the built-in
	// bindings.
	Keys map[string]string `toml:"keys"`
}

// FoldSettings control automatic folding.
type FoldSettings struct {
	// Level is the indentation depth documents fold down to.
	Level int `toml:"level"`

	// Recursive folds level by level from the deepest indentation.
	Recursive bool `toml:"recursive"`

	// Method selects which documents fold on open: none, any or tagged.
	Method string `toml:"method"`

	// Tags is the tag list the tagged method matches against.
	Tags []string `toml:"tags"`
}

// EditorSettings control document handling.
type EditorSettings struct {
	// ScrollOff is the minimum number of visible lines kept above and
	// below the cursor.
	ScrollOff int `toml:"scroll_off"`
}

// UISettings control rendering.
type UISettings struct {
	// LineNumbers shows the line number gutter.
	LineNumbers bool `toml:"line_numbers"`

	// StatusLine shows the status line.
	StatusLine bool `toml:"status_line"`
}

// LoggingSettings control the log output.
type LoggingSettings struct {
	// Level is a zerolog level name.
	Level string `toml:"level"`

	// File is the log destination. Empty disables logging; the
	// terminal belongs to the renderer.
	File string `toml:"file"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Fold: FoldSettings{
			Level:     fold.DefaultLevel,
			Recursive: false,
			Method:    fold.MethodAny.String(),
		},
		Editor: EditorSettings{
			ScrollOff: 2,
		},
		UI: UISettings{
			LineNumbers: true,
			StatusLine:  true,
		},
		Logging: LoggingSettings{
			Level: "info",
		},
	}
}

// DefaultPath returns the config file location under the XDG config
// home, creating parent directories as needed.
func DefaultPath() (string, error) {
	return xdg.ConfigFile("notefold/config.toml")
}

// Validate checks every setting.
func (s *Settings) Validate() error {
	if s.Fold.Level < 0 {
		return &ValidationError{Key: "fold.level", Value: s.Fold.Level, Reason: "must not be negative"}
	}
	if _, err := fold.ParseMethod(s.Fold.Method); err != nil {
		return &ValidationError{Key: "fold.method", Value: s.Fold.Method, Reason: "must be none, any or tagged"}
	}
	if s.Editor.ScrollOff < 0 {
		return &ValidationError{Key: "editor.scroll_off", Value: s.Editor.ScrollOff, Reason: "must not be negative"}
	}
	if _, err := zerolog.ParseLevel(s.Logging.Level); err != nil {
		return &ValidationError{Key: "logging.level", Value: s.Logging.Level, Reason: "unknown log level"}
	}
	return nil
}

// Config is the live configuration. All methods are safe for concurrent
// use.
type Config struct {
	mu       sync.RWMutex
	path     string
	settings Settings
	notifier *Notifier
}

// Load reads the config file at path, overlaying it over the defaults.
// A missing file yields the defaults; a file only needs the keys it
// changes.
func Load(path string) (*Config, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &settings); err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &Config{
		path:     path,
		settings: settings,
		notifier: NewNotifier(),
	}, nil
}

// LoadDefault loads the config file from its default XDG location.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, fmt.Errorf("resolving config path: %w", err)
	}
	return Load(path)
}

// Path returns the config file location.
func (c *Config) Path() string {
	return c.path
}

// Settings returns a copy of the current settings.
func (c *Config) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings.clone()
}

// Fold returns the current fold settings in engine form.
func (c *Config) Fold() fold.Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()

	method, err := fold.ParseMethod(c.settings.Fold.Method)
	if err != nil {
		method = fold.MethodAny
	}
	tags := make([]string, len(c.settings.Fold.Tags))
	copy(tags, c.settings.Fold.Tags)
	return fold.Settings{
		Level:     c.settings.Fold.Level,
		Recursive: c.settings.Fold.Recursive,
		Method:    method,
		Tags:      tags,
	}
}

// Editor returns the current editor settings.
func (c *Config) Editor() EditorSettings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings.Editor
}

// UI returns the current UI settings.
func (c *Config) UI() UISettings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings.UI
}

// Logging returns the current logging settings.
func (c *Config) Logging() LoggingSettings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings.Logging
}

// Keys returns the key bindings from the config file. The built-in
// bindings live with the key handling, not here.
func (c *Config) Keys() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]string, len(c.settings.Keys))
	for k, v := range c.settings.Keys {
		out[k] = v
	}
	return out
}

// Get returns the value of a dot-separated key.
func (c *Config) Get(key string) (any, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch key {
	case "fold.level":
		return c.settings.Fold.Level, nil
	case "fold.recursive":
		return c.settings.Fold.Recursive, nil
	case "fold.method":
		return c.settings.Fold.Method, nil
	case "fold.tags":
		tags := make([]string, len(c.settings.Fold.Tags))
		copy(tags, c.settings.Fold.Tags)
		return tags, nil
	case "editor.scroll_off":
		return c.settings.Editor.ScrollOff, nil
	case "ui.line_numbers":
		return c.settings.UI.LineNumbers, nil
	case "ui.status_line":
		return c.settings.UI.StatusLine, nil
	case "logging.level":
		return c.settings.Logging.Level, nil
	case "logging.file":
		return c.settings.Logging.File, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set validates the value, applies it, persists the file and notifies
// observers.
func (c *Config) Set(key string, value any) error {
	c.mu.Lock()

	next := c.settings.clone()
	old, err := apply(&next, key, value)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if err := next.Validate(); err != nil {
		c.mu.Unlock()
		return err
	}

	c.settings = next
	path := c.path
	persisted := next.clone()
	c.mu.Unlock()

	if err := save(path, persisted); err != nil {
		return err
	}
	c.notifier.NotifySet(key, old, value)
	return nil
}

// Save writes the current settings to the config file.
func (c *Config) Save() error {
	c.mu.RLock()
	path := c.path
	settings := c.settings.clone()
	c.mu.RUnlock()
	return save(path, settings)
}

// Reload re-reads the config file. When the file's contents produce the
// same settings the reload is a silent no-op; observers are only
// notified of real changes.
func (c *Config) Reload() error {
	fresh, err := Load(c.path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if reflect.DeepEqual(c.settings, fresh.settings) {
		c.mu.Unlock()
		return nil
	}
	c.settings = fresh.settings
	c.mu.Unlock()

	c.notifier.NotifyReload()
	return nil
}

// OnChange subscribes an observer to every config change.
func (c *Config) OnChange(observer Observer) *ObserverHandle {
	return c.notifier.Subscribe(observer)
}

// OnChangeKey subscribes an observer to changes of one key or key
// prefix. Subscribing to "fold" receives changes to "fold.level".
func (c *Config) OnChangeKey(key string, observer Observer) *ObserverHandle {
	return c.notifier.SubscribeKey(key, observer)
}

// Close detaches all observers.
func (c *Config) Close() {
	c.notifier.Close()
}

// clone deep-copies the settings.
func (s Settings) clone() Settings {
	out := s
	if s.Fold.Tags != nil {
		out.Fold.Tags = make([]string, len(s.Fold.Tags))
		copy(out.Fold.Tags, s.Fold.Tags)
	}
	if s.Keys != nil {
		out.Keys = make(map[string]string, len(s.Keys))
		for k, v := range s.Keys {
			out.Keys[k] = v
		}
	}
	return out
}

// apply sets one key on the settings, returning the previous value.
func apply(s *Settings, key string, value any) (any, error) {
	switch key {
	case "fold.level":
		n, err := toInt(key, value)
		if err != nil {
			return nil, err
		}
		old := s.Fold.Level
		s.Fold.Level = n
		return old, nil
	case "fold.recursive":
		b, err := toBool(key, value)
		if err != nil {
			return nil, err
		}
		old := s.Fold.Recursive
		s.Fold.Recursive = b
		return old, nil
	case "fold.method":
		str, err := toString(key, value)
		if err != nil {
			return nil, err
		}
		old := s.Fold.Method
		s.Fold.Method = str
		return old, nil
	case "fold.tags":
		tags, err := toStringSlice(key, value)
		if err != nil {
			return nil, err
		}
		old := s.Fold.Tags
		s.Fold.Tags = tags
		return old, nil
	case "editor.scroll_off":
		n, err := toInt(key, value)
		if err != nil {
			return nil, err
		}
		old := s.Editor.ScrollOff
		s.Editor.ScrollOff = n
		return old, nil
	case "ui.line_numbers":
		b, err := toBool(key, value)
		if err != nil {
			return nil, err
		}
		old := s.UI.LineNumbers
		s.UI.LineNumbers = b
		return old, nil
	case "ui.status_line":
		b, err := toBool(key, value)
		if err != nil {
			return nil, err
		}
		old := s.UI.StatusLine
		s.UI.StatusLine = b
		return old, nil
	case "logging.level":
		str, err := toString(key, value)
		if err != nil {
			return nil, err
		}
		old := s.Logging.Level
		s.Logging.Level = str
		return old, nil
	case "logging.file":
		str, err := toString(key, value)
		if err != nil {
			return nil, err
		}
		old := s.Logging.File
		s.Logging.File = str
		return old, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// save writes the settings as TOML, creating parent directories as
// needed.
func save(path string, settings Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

func toInt(key string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, &ValidationError{Key: key, Value: value, Reason: "not an integer"}
		}
		return n, nil
	default:
		return 0, &ValidationError{Key: key, Value: value, Reason: "not an integer"}
	}
}

func toBool(key string, value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, &ValidationError{Key: key, Value: value, Reason: "not a boolean"}
		}
		return b, nil
	default:
		return false, &ValidationError{Key: key, Value: value, Reason: "not a boolean"}
	}
}

func toString(key string, value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", &ValidationError{Key: key, Value: value, Reason: "not a string"}
}

func toStringSlice(key string, value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, nil
	case string:
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, &ValidationError{Key: key, Value: value, Reason: "not a list of strings"}
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, &ValidationError{Key: key, Value: value, Reason: "not a list of strings"}
	}
}
