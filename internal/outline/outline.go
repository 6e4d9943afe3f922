// Package outline resolves the block structure of indented bullet
// outlines. A block is a list-item line together with every following
// line indented more deeply than the item, the unit folding collapses.
package outline

import (
	"strings"

	"github.com/dshills/notefold/internal/engine/indent"
	"github.com/dshills/notefold/internal/fold"
)

// Lines is the read surface block resolution needs. Both live documents
// and snapshots satisfy it.
type Lines interface {
	// LineCount returns the number of lines.
	LineCount() int

	// Line returns the text of a line. Out-of-range lines read as the
	// empty string.
	Line(line int) string
}

// Block resolves the block of the list item at the given line. The span
// starts at the item and extends over every following line indented more
// deeply. Blank lines inside the block belong to it only when a deeper
// non-blank line follows; trailing blanks before a sibling or shallower
// item are left outside. ok is false when the line is out of range or
// not a list item.
func Block(src Lines, item int) (fold.Span, bool) {
	if item < 0 || item >= src.LineCount() {
		return fold.Span{}, false
	}
	text := src.Line(item)
	if !indent.IsListItem(text) {
		return fold.Span{}, false
	}

	depth := indent.Depth(text)
	last := item
	count := src.LineCount()
	for i := item + 1; i < count; i++ {
		line := src.Line(i)
		if isBlank(line) {
			// Held until a deeper non-blank line claims it.
			continue
		}
		if indent.Depth(line) <= depth {
			break
		}
		last = i
	}
	return fold.Span{First: item, Last: last}, true
}

// ItemAt finds the list item whose block contains the given line. A
// list-item line owns itself; a continuation or interior blank line is
// owned by the nearest item above whose block reaches it. ok is false
// when the line belongs to no block.
func ItemAt(src Lines, line int) (int, bool) {
	if line < 0 || line >= src.LineCount() {
		return 0, false
	}
	for i := line; i >= 0; i-- {
		if !indent.IsListItem(src.Line(i)) {
			continue
		}
		span, ok := Block(src, i)
		if ok && span.Last >= line {
			return i, true
		}
	}
	return 0, false
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
