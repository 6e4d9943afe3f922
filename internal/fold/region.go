package fold

import "fmt"

// Span is an item block: a list-item line plus its more deeply indented
// continuation lines.
type Span struct {
	// First is the list-item line.
	First int

	// Last is the final line of the block, inclusive. A leaf item has
	// Last == First.
	Last int
}

// Len returns the number of lines in the span.
func (s Span) Len() int {
	if s.Last < s.First {
		return 0
	}
	return s.Last - s.First + 1
}

// Region is a collapsible range anchored at a visible line. Folding the
// region conceals the lines after Anchor through Last inclusive; the
// anchor line stays visible.
type Region struct {
	// Anchor is the line that stays visible.
	Anchor int

	// Last is the final concealed line, inclusive.
	Last int
}

// Empty reports whether the region conceals nothing.
func (r Region) Empty() bool {
	return r.Last <= r.Anchor
}

// Hides reports whether the line is concealed when the region is folded.
func (r Region) Hides(line int) bool {
	return line > r.Anchor && line <= r.Last
}

// HiddenLines returns the number of lines the region conceals.
func (r Region) HiddenLines() int {
	if r.Empty() {
		return 0
	}
	return r.Last - r.Anchor
}

// String returns a human-readable representation of the region.
func (r Region) String() string {
	return fmt.Sprintf("[%d..%d]", r.Anchor, r.Last)
}
