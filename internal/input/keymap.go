package input

import (
	"fmt"
	"sync"

	"github.com/dshills/notefold/internal/renderer"
)

// Binding maps a key specification to an action name.
type Binding struct {
	// Keys is the key specification, in ParseChord format.
	Keys string

	// Action is the dispatcher action to execute.
	// Examples: "cursor.moveDown", "fold.toggle", "app.quit"
	Action string
}

// Keymap holds the active key bindings.
type Keymap struct {
	mu       sync.RWMutex
	bindings map[Chord]string
}

// New creates an empty keymap.
func New() *Keymap {
	return &Keymap{bindings: make(map[Chord]string)}
}

// Default returns the stock bindings.
func Default() *Keymap {
	km := New()
	for _, b := range []Binding{
		// Cursor
		{Keys: "j", Action: "cursor.moveDown"},
		{Keys: "down", Action: "cursor.moveDown"},
		{Keys: "k", Action: "cursor.moveUp"},
		{Keys: "up", Action: "cursor.moveUp"},
		{Keys: "ctrl+d", Action: "cursor.pageDown"},
		{Keys: "pgdn", Action: "cursor.pageDown"},
		{Keys: "ctrl+u", Action: "cursor.pageUp"},
		{Keys: "pgup", Action: "cursor.pageUp"},
		{Keys: "g", Action: "cursor.top"},
		{Keys: "home", Action: "cursor.top"},
		{Keys: "G", Action: "cursor.bottom"},
		{Keys: "end", Action: "cursor.bottom"},

		// Folding
		{Keys: "space", Action: "fold.toggle"},
		{Keys: "enter", Action: "fold.toggle"},
		{Keys: "F", Action: "fold.deepListItems"},
		{Keys: "R", Action: "fold.unfoldAll"},

		// Application
		{Keys: "q", Action: "app.quit"},
		{Keys: "ctrl+c", Action: "app.quit"},
	} {
		if err := km.Bind(b.Keys, b.Action); err != nil {
			panic(fmt.Sprintf("default binding %q: %v", b.Keys, err))
		}
	}
	return km
}

// Bind maps a key specification to an action. An empty action removes
// the binding.
func (k *Keymap) Bind(spec, action string) error {
	c, err := ParseChord(spec)
	if err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	if action == "" {
		delete(k.bindings, c)
		return nil
	}
	k.bindings[c] = action
	return nil
}

// Merge applies user overrides on top of the current bindings.
func (k *Keymap) Merge(overrides map[string]string) error {
	for spec, action := range overrides {
		if err := k.Bind(spec, action); err != nil {
			return fmt.Errorf("key %q: %w", spec, err)
		}
	}
	return nil
}

// Lookup resolves a terminal event to an action name.
func (k *Keymap) Lookup(ev renderer.Event) (string, bool) {
	c, ok := ChordOf(ev)
	if !ok {
		return "", false
	}

	k.mu.RLock()
	defer k.mu.RUnlock()
	action, ok := k.bindings[c]
	return action, ok
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.bindings)
}
