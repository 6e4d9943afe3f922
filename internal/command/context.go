package command

import (
	"github.com/rs/zerolog"

	"github.com/dshills/notefold/internal/fold"
)

// View is the slice of an editor view that handlers drive. Cursor
// movement is fold-aware: the cursor only lands on visible lines.
type View interface {
	// LineCount returns the number of lines in the document.
	LineCount() int

	// CursorLine returns the cursor's current line.
	CursorLine() int

	// MoveCursor moves the cursor by delta visible lines and returns
	// the line it landed on.
	MoveCursor(delta int) int

	// MoveCursorTo puts the cursor on the given line, clamped to the
	// document and snapped to a visible line. It returns the line the
	// cursor landed on.
	MoveCursorTo(line int) int

	// ToggleFold folds the block at the line, or unfolds the region
	// anchored there. folded is true when a fold was applied, false
	// when one was removed. The error says why neither was possible.
	ToggleFold(line int) (folded bool, err error)

	// UnfoldAll removes every fold and returns how many there were.
	UnfoldAll() int

	// FoldDeep runs automatic folding with the given settings and
	// returns the number of folds applied.
	FoldDeep(settings fold.Settings) int
}

// Context carries what handlers need at dispatch time.
type Context struct {
	// View is the active editor view, nil when no document is open.
	View View

	// Fold is the fold configuration current at dispatch time.
	Fold fold.Settings

	// PageLines is the height of the content area, used for page
	// movement. Zero when unknown.
	PageLines int

	// Log is the dispatch logger.
	Log zerolog.Logger
}
