package session

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dshills/notefold/internal/engine/document"
	"github.com/dshills/notefold/internal/event"
	"github.com/dshills/notefold/internal/event/events"
	"github.com/dshills/notefold/internal/fold"
	"github.com/dshills/notefold/internal/meta"
	"github.com/dshills/notefold/internal/outline"
)

// View is one open document with its fold state, cursor, and metadata.
// The cursor only ever rests on visible lines; operations that conceal
// it snap it to the anchor of the fold that swallowed it.
type View struct {
	doc    *document.Document
	folds  *fold.State
	folder *fold.Folder
	bus    event.Bus
	log    zerolog.Logger

	title string
	tags  []string

	mu     sync.RWMutex
	cursor int
}

// newView builds a view for the document and extracts its metadata.
// A nil bus disables lifecycle events.
func newView(doc *document.Document, folder *fold.Folder, bus event.Bus, log zerolog.Logger) *View {
	m := meta.Parse(doc.Lines())

	title := m.Title
	if title == "" {
		if path := doc.Path(); path != "" {
			title = filepath.Base(path)
		} else {
			title = "untitled"
		}
	}

	return &View{
		doc:    doc,
		folds:  fold.NewState(),
		folder: folder,
		bus:    bus,
		log:    log.With().Str("component", "view").Str("document", doc.ID()).Logger(),
		title:  title,
		tags:   m.Tags,
	}
}

// ID returns the document's unique identifier.
func (v *View) ID() string {
	return v.doc.ID()
}

// Path returns the file path the document was read from.
func (v *View) Path() string {
	return v.doc.Path()
}

// Title returns the display name: the front matter title when present,
// otherwise the file name.
func (v *View) Title() string {
	return v.title
}

// Tags returns the tags extracted from the document's metadata.
func (v *View) Tags() []string {
	out := make([]string, len(v.tags))
	copy(out, v.tags)
	return out
}

// LineCount returns the number of lines in the document.
func (v *View) LineCount() int {
	return v.doc.LineCount()
}

// Line returns the text of a line.
func (v *View) Line(line int) string {
	return v.doc.Line(line)
}

// Host interface for the fold engine.

// BlockSpan returns the block belonging to the list item at the line.
func (v *View) BlockSpan(line int) (fold.Span, bool) {
	return outline.Block(v.doc, line)
}

// FoldableRange turns a block span into a foldable region. It declines
// degenerate spans, spans whose anchor is already concealed, and
// regions that are already folded.
func (v *View) FoldableRange(span fold.Span) (fold.Region, bool) {
	r := fold.Region{Anchor: span.First, Last: span.Last}
	if r.Empty() {
		return fold.Region{}, false
	}
	if v.folds.IsHidden(r.Anchor) {
		return fold.Region{}, false
	}
	if v.folds.Contains(r) {
		return fold.Region{}, false
	}
	return r, true
}

// ApplyFold collapses the region. The cursor is snapped out of the
// concealed range and a fold.applied event is published.
func (v *View) ApplyFold(r fold.Region) {
	if !v.folds.Apply(r) {
		return
	}
	v.snapCursor()
	v.publish(event.NewEvent(events.TopicFoldApplied, events.FoldApplied{
		DocumentID:  v.doc.ID(),
		Anchor:      r.Anchor,
		Last:        r.Last,
		HiddenLines: r.HiddenLines(),
	}, "view"))
}

// Cursor operations.

// CursorLine returns the cursor's current line.
func (v *View) CursorLine() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.cursor
}

// MoveCursor moves the cursor by delta visible lines and returns the
// line it landed on. Folded regions count as a single line.
func (v *View) MoveCursor(delta int) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	count := v.doc.LineCount()
	if count == 0 {
		v.cursor = 0
		return 0
	}

	line := v.cursor
	for step := delta; step > 0; step-- {
		next := v.folds.NextVisible(line + 1)
		if next >= count {
			break
		}
		line = next
	}
	for step := delta; step < 0; step++ {
		if line == 0 {
			break
		}
		line = v.folds.PrevVisible(line - 1)
	}
	v.cursor = line
	return line
}

// MoveCursorTo puts the cursor on the given line, clamped to the
// document and snapped to the nearest visible line at or above it.
func (v *View) MoveCursorTo(line int) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	count := v.doc.LineCount()
	if count == 0 {
		v.cursor = 0
		return 0
	}
	if line < 0 {
		line = 0
	}
	if line >= count {
		line = count - 1
	}
	v.cursor = v.folds.PrevVisible(line)
	return v.cursor
}

// snapCursor moves the cursor to the anchor of the fold concealing it,
// if any.
func (v *View) snapCursor() {
	v.mu.Lock()
	v.cursor = v.folds.PrevVisible(v.cursor)
	v.mu.Unlock()
}

// Fold operations.

// ToggleFold folds the block enclosing the line, or unfolds the region
// anchored there. folded reports whether a fold was applied rather than
// removed. When no enclosing block can fold it returns ErrNothingToFold.
func (v *View) ToggleFold(line int) (folded bool, err error) {
	if v.folds.IsAnchor(line) {
		r, ok := v.folds.Unfold(line)
		if ok {
			v.publish(event.NewEvent(events.TopicFoldRemoved, events.FoldRemoved{
				DocumentID: v.doc.ID(),
				Anchor:     r.Anchor,
				Last:       r.Last,
			}, "view"))
			return false, nil
		}
	}

	// Walk outward from the line: first the item it belongs to, then
	// enclosing items, until a block that both contains the line and
	// can fold is found.
	search := line
	for {
		item, ok := outline.ItemAt(v.doc, search)
		if !ok {
			return false, ErrNothingToFold
		}
		if span, ok := outline.Block(v.doc, item); ok && span.Last >= line {
			if region, ok := v.FoldableRange(span); ok {
				v.ApplyFold(region)
				return true, nil
			}
		}
		if item == 0 {
			return false, ErrNothingToFold
		}
		search = item - 1
	}
}

// UnfoldAll removes every fold and returns how many there were.
func (v *View) UnfoldAll() int {
	n := v.folds.UnfoldAll()
	if n > 0 {
		v.publish(event.NewEvent(events.TopicFoldCleared, events.FoldCleared{
			DocumentID: v.doc.ID(),
			Removed:    n,
		}, "view"))
	}
	return n
}

// FoldDeep runs automatic folding over the view with the given
// settings and returns the number of folds applied.
func (v *View) FoldDeep(s fold.Settings) int {
	return v.folder.FoldDeep(v, s)
}

// Render state.

// IsHidden reports whether the line is concealed by a fold.
func (v *View) IsHidden(line int) bool {
	return v.folds.IsHidden(line)
}

// IsFoldAnchor reports whether a folded region is anchored at the line.
func (v *View) IsFoldAnchor(line int) bool {
	return v.folds.IsAnchor(line)
}

// IsFoldable reports whether the line is a list item with a block that
// spans more than the item itself.
func (v *View) IsFoldable(line int) bool {
	span, ok := outline.Block(v.doc, line)
	return ok && span.Last > span.First
}

// HiddenAt returns how many lines the fold anchored at the line
// conceals, 0 when none is anchored there.
func (v *View) HiddenAt(line int) int {
	r, ok := v.folds.RegionAt(line)
	if !ok {
		return 0
	}
	return r.HiddenLines()
}

// FoldCount returns the number of folded regions.
func (v *View) FoldCount() int {
	return v.folds.Count()
}

// VisibleCount returns how many document lines are not concealed.
func (v *View) VisibleCount() int {
	return v.folds.VisibleCount(v.doc.LineCount())
}

// publish sends a fold lifecycle event, dropping it when the view has
// no bus or the bus is not running.
func (v *View) publish(e any) {
	if v.bus == nil {
		return
	}
	if err := v.bus.Publish(context.Background(), e); err != nil {
		v.log.Debug().Err(err).Msg("fold event dropped")
	}
}
