package renderer

// View is what the renderer needs to know about the document being
// shown. Lines are 0-indexed; hidden lines are skipped entirely.
type View interface {
	// LineCount returns the number of lines in the document.
	LineCount() int

	// Line returns the text of a line.
	Line(line int) string

	// Title returns the name shown in the status line.
	Title() string

	// CursorLine returns the cursor's line.
	CursorLine() int

	// IsHidden reports whether the line is concealed by a fold.
	IsHidden(line int) bool

	// IsFoldAnchor reports whether a folded region is anchored at the
	// line.
	IsFoldAnchor(line int) bool

	// IsFoldable reports whether the line is an expanded item whose
	// block could fold.
	IsFoldable(line int) bool

	// HiddenAt returns how many lines the fold anchored at the line
	// conceals, 0 when none is anchored there.
	HiddenAt(line int) int

	// FoldCount returns the number of folded regions.
	FoldCount() int
}
