package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/notefold/internal/renderer"
)

// Parse errors
var (
	ErrEmptySpec  = errors.New("empty key specification")
	ErrUnknownKey = errors.New("unknown key name")
)

// Chord is one normalized key press. Printable characters use KeyRune
// with the character in Rune; everything else is identified by Key
// alone.
type Chord struct {
	Key  renderer.Key
	Rune rune
}

// keyNames maps special key names to their keys. Names are matched
// case-insensitively.
var keyNames = map[string]renderer.Key{
	"enter":     renderer.KeyEnter,
	"return":    renderer.KeyEnter,
	"esc":       renderer.KeyEscape,
	"escape":    renderer.KeyEscape,
	"tab":       renderer.KeyTab,
	"backspace": renderer.KeyBackspace,
	"up":        renderer.KeyUp,
	"down":      renderer.KeyDown,
	"left":      renderer.KeyLeft,
	"right":     renderer.KeyRight,
	"pgup":      renderer.KeyPageUp,
	"pageup":    renderer.KeyPageUp,
	"pgdn":      renderer.KeyPageDown,
	"pagedown":  renderer.KeyPageDown,
	"home":      renderer.KeyHome,
	"end":       renderer.KeyEnd,
}

// ctrlChords maps the letter after "ctrl+" to its key.
var ctrlChords = map[string]renderer.Key{
	"c": renderer.KeyCtrlC,
	"d": renderer.KeyCtrlD,
	"u": renderer.KeyCtrlU,
}

// ParseChord parses a key specification into a chord.
//
// Supported formats:
//   - Single character: "q", "G", "1"
//   - Special keys: "space", "enter", "esc", "tab", "up", "pgdn"
//   - Control chords: "ctrl+c", "ctrl+d", "ctrl+u"
func ParseChord(spec string) (Chord, error) {
	name := strings.TrimSpace(spec)
	if name == "" {
		return Chord{}, ErrEmptySpec
	}

	lower := strings.ToLower(name)

	if rest, ok := strings.CutPrefix(lower, "ctrl+"); ok {
		if key, ok := ctrlChords[rest]; ok {
			return Chord{Key: key}, nil
		}
		return Chord{}, fmt.Errorf("%w: %q", ErrUnknownKey, spec)
	}

	if lower == "space" {
		return Chord{Key: renderer.KeyRune, Rune: ' '}, nil
	}
	if key, ok := keyNames[lower]; ok {
		return Chord{Key: key}, nil
	}

	// Case matters for single characters: "g" and "G" are distinct.
	runes := []rune(name)
	if len(runes) == 1 {
		return Chord{Key: renderer.KeyRune, Rune: runes[0]}, nil
	}
	return Chord{}, fmt.Errorf("%w: %q", ErrUnknownKey, spec)
}

// ChordOf extracts the chord from a key event. ok is false for
// non-key events.
func ChordOf(ev renderer.Event) (Chord, bool) {
	if ev.Type != renderer.EventKey {
		return Chord{}, false
	}
	c := Chord{Key: ev.Key}
	if ev.Key == renderer.KeyRune {
		c.Rune = ev.Rune
	}
	return c, true
}
