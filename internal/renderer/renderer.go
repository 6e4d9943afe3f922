package renderer

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/dshills/notefold/internal/engine/indent"
)

// Frame describes one complete screen.
type Frame struct {
	// View is the document view, nil when nothing is open.
	View View

	// Viewport is the scroll state. Draw sizes it to the content area
	// and scrolls it to the cursor.
	Viewport *Viewport

	// Message is shown in the status line until the next frame.
	Message string

	// ShowLineNumbers shows the line number gutter.
	ShowLineNumbers bool

	// ShowStatus shows the status line.
	ShowStatus bool
}

// Renderer draws frames onto a backend.
type Renderer struct {
	backend Backend
	log     zerolog.Logger
}

// New creates a renderer for the backend.
func New(backend Backend, log zerolog.Logger) *Renderer {
	return &Renderer{
		backend: backend,
		log:     log.With().Str("component", "renderer").Logger(),
	}
}

var (
	styleText   = StyleDefault
	styleTilde  = StyleDefault.WithFG(ColorBlue).WithDim()
	styleNumber = StyleDefault.WithDim()
	styleFolded = StyleDefault.WithFG(ColorYellow).WithBold()
	styleMarker = StyleDefault.WithDim()
	styleBadge  = StyleDefault.WithFG(ColorYellow).WithDim()
	styleStatus = StyleDefault.WithReverse()
)

// Draw renders one frame.
func (r *Renderer) Draw(f Frame) {
	b := r.backend
	width, height := b.Size()
	if width <= 0 || height <= 0 {
		return
	}
	b.Clear()

	contentHeight := height
	if f.ShowStatus {
		contentHeight--
	}

	if f.View == nil {
		for row := 0; row < contentHeight; row++ {
			b.SetCell(0, row, '~', styleTilde)
		}
		if f.ShowStatus {
			r.drawStatus(width, height-1, "no document", f.Message, "")
		}
		b.HideCursor()
		b.Show()
		return
	}

	v := f.View
	vp := f.Viewport
	vp.Height = contentHeight
	vp.EnsureVisible(v, v.CursorLine())

	gutterWidth := 0
	if f.ShowLineNumbers {
		gutterWidth = digits(v.LineCount()) + 1
	}
	contentX := gutterWidth + 2

	row := 0
	line := vp.Top
	cursorRow := -1
	for row < contentHeight && line < v.LineCount() {
		if v.IsHidden(line) {
			line++
			continue
		}
		r.drawLine(v, line, row, width, gutterWidth, contentX, f.ShowLineNumbers)
		if line == v.CursorLine() {
			cursorRow = row
		}
		row++
		line++
	}
	for ; row < contentHeight; row++ {
		b.SetCell(0, row, '~', styleTilde)
	}

	if f.ShowStatus {
		position := fmt.Sprintf("%d/%d", v.CursorLine()+1, v.LineCount())
		if n := v.FoldCount(); n > 0 {
			position = fmt.Sprintf("%s  %d folds", position, n)
		}
		r.drawStatus(width, height-1, v.Title(), f.Message, position)
	}

	if cursorRow >= 0 {
		b.ShowCursor(contentX, cursorRow)
	} else {
		b.HideCursor()
	}
	b.Show()

	r.log.Trace().Int("top", vp.Top).Int("cursor", v.CursorLine()).Msg("frame drawn")
}

// drawLine renders one visible document line: number, fold marker, text
// and the hidden-line badge for folded anchors.
func (r *Renderer) drawLine(v View, line, row, width, gutterWidth, contentX int, numbers bool) {
	b := r.backend

	if numbers {
		num := strconv.Itoa(line + 1)
		x := gutterWidth - 1 - len(num)
		for i, ch := range num {
			b.SetCell(x+i, row, ch, styleNumber)
		}
	}

	marker := ' '
	markerStyle := styleMarker
	switch {
	case v.IsFoldAnchor(line):
		marker = '+'
		markerStyle = styleFolded
	case v.IsFoldable(line):
		marker = '-'
	}
	b.SetCell(gutterWidth, row, marker, markerStyle)

	x := contentX
	for _, ch := range indent.Expand(v.Line(line)) {
		if x >= width {
			return
		}
		b.SetCell(x, row, ch, styleText)
		x++
	}

	if v.IsFoldAnchor(line) {
		badge := fmt.Sprintf(" [+%d]", v.HiddenAt(line))
		for _, ch := range badge {
			if x >= width {
				return
			}
			b.SetCell(x, row, ch, styleBadge)
			x++
		}
	}
}

// drawStatus renders the status line: title and message on the left,
// position on the right.
func (r *Renderer) drawStatus(width, row int, title, message, position string) {
	b := r.backend
	for x := 0; x < width; x++ {
		b.SetCell(x, row, ' ', styleStatus)
	}

	left := " " + title
	if message != "" {
		left += "  " + message
	}
	x := 0
	for _, ch := range left {
		if x >= width {
			break
		}
		b.SetCell(x, row, ch, styleStatus)
		x++
	}

	if position != "" {
		start := width - len(position) - 1
		if start > x {
			for i, ch := range position {
				b.SetCell(start+i, row, ch, styleStatus)
			}
		}
	}
}

// digits returns the column width needed for the largest line number.
func digits(n int) int {
	if n < 1 {
		return 1
	}
	return len(strconv.Itoa(n))
}
