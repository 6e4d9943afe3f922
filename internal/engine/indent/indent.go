// Package indent measures the indentation depth of outline lines.
//
// Depth is the number of leading whitespace characters after every tab has
// been replaced by four literal spaces. The replacement is fixed width
// rather than tab-stop aligned: a tab after two spaces still contributes
// four characters. Outline indentation is authored one tab or four spaces
// per level, so fixed expansion keeps levels at exact multiples of four.
package indent

import (
	"strings"
	"unicode"
)

// TabWidth is the number of space characters a tab counts for when
// measuring depth.
const TabWidth = 4

// ListMarker introduces a foldable list item.
const ListMarker = "-"

// Depth returns the number of leading whitespace characters in line after
// tab expansion. An empty line has depth 0.
func Depth(line string) int {
	depth := 0
	for _, r := range line {
		switch {
		case r == '\t':
			depth += TabWidth
		case unicode.IsSpace(r):
			depth++
		default:
			return depth
		}
	}
	return depth
}

// MaxDepth returns the greatest Depth over all lines. It returns 0 for an
// empty document.
func MaxDepth(lines []string) int {
	deepest := 0
	for _, line := range lines {
		if d := Depth(line); d > deepest {
			deepest = d
		}
	}
	return deepest
}

// IsListItem reports whether the line, after trimming surrounding
// whitespace, begins with the list marker.
func IsListItem(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), ListMarker)
}

// Expand returns line with every tab replaced by TabWidth spaces.
func Expand(line string) string {
	return strings.ReplaceAll(line, "\t", strings.Repeat(" ", TabWidth))
}
