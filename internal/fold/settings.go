package fold

import (
	"fmt"
	"strings"
)

// DefaultLevel is the indentation depth documents are folded down to
// when nothing else is configured.
const DefaultLevel = 8

// Method selects which documents are folded automatically when opened.
type Method uint8

const (
	// MethodNone disables automatic folding.
	MethodNone Method = iota

	// MethodAny folds every opened document.
	MethodAny

	// MethodTagged folds documents carrying at least one configured tag.
	MethodTagged
)

// String returns the method's configuration name.
func (m Method) String() string {
	switch m {
	case MethodNone:
		return "none"
	case MethodAny:
		return "any"
	case MethodTagged:
		return "tagged"
	default:
		return "none"
	}
}

// ParseMethod converts a configuration value into a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return MethodNone, nil
	case "any":
		return MethodAny, nil
	case "tagged":
		return MethodTagged, nil
	default:
		return MethodNone, fmt.Errorf("unknown fold method %q", s)
	}
}

// Settings control automatic folding.
type Settings struct {
	// Level is the indentation depth the document is folded down to.
	Level int

	// Recursive folds level by level from the deepest indentation down
	// to Level instead of running one pass at Level.
	Recursive bool

	// Method selects which documents fold automatically on open.
	Method Method

	// Tags is the tag list MethodTagged matches against.
	Tags []string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Level:     DefaultLevel,
		Recursive: false,
		Method:    MethodAny,
	}
}

// ShouldFold reports whether a document carrying the given tags should
// be folded automatically. Tag comparison is case-insensitive and
// tolerant of a leading '#' on either side.
func (s Settings) ShouldFold(docTags []string) bool {
	switch s.Method {
	case MethodAny:
		return true
	case MethodTagged:
		if len(s.Tags) == 0 || len(docTags) == 0 {
			return false
		}
		want := make(map[string]struct{}, len(s.Tags))
		for _, tag := range s.Tags {
			if norm := NormalizeTag(tag); norm != "" {
				want[norm] = struct{}{}
			}
		}
		for _, tag := range docTags {
			norm := NormalizeTag(tag)
			if norm == "" {
				continue
			}
			if _, ok := want[norm]; ok {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// NormalizeTag lowercases a tag and strips surrounding whitespace and a
// leading '#'.
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	tag = strings.TrimPrefix(tag, "#")
	return strings.ToLower(tag)
}
