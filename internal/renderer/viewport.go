package renderer

// Viewport tracks which slice of the document is on screen. Top is the
// first document line drawn; scrolling distances count visible lines
// only, so folded regions collapse to nothing on screen.
type Viewport struct {
	// Top is the first document line shown.
	Top int

	// Height is the number of content rows.
	Height int

	// ScrollOff is the minimum number of visible lines kept between
	// the cursor and the window edges.
	ScrollOff int
}

// EnsureVisible scrolls just enough to keep the cursor inside the
// window, honoring the scroll margin.
func (vp *Viewport) EnsureVisible(v View, cursor int) {
	if vp.Height <= 0 || v.LineCount() == 0 {
		vp.Top = 0
		return
	}

	off := vp.ScrollOff
	if 2*off >= vp.Height {
		off = (vp.Height - 1) / 2
	}

	top := vp.Top
	if top < 0 {
		top = 0
	}
	if top > cursor {
		top = cursor
	}

	row := 0
	for line := top; line < cursor; line++ {
		if !v.IsHidden(line) {
			row++
		}
	}

	switch {
	case row < off:
		top = backUp(v, cursor, off)
	case row >= vp.Height-off:
		top = backUp(v, cursor, vp.Height-1-off)
	}
	vp.Top = top
}

// backUp returns the line n visible steps above the given line, clamped
// at the start of the document.
func backUp(v View, line, n int) int {
	for line > 0 && n > 0 {
		prev := line - 1
		for prev > 0 && v.IsHidden(prev) {
			prev--
		}
		if v.IsHidden(prev) {
			break
		}
		line = prev
		n--
	}
	return line
}
