package renderer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type fakeView struct {
	lines    []string
	title    string
	cursor   int
	hidden   map[int]bool
	anchors  map[int]int
	foldable map[int]bool
}

func (v *fakeView) LineCount() int { return len(v.lines) }

func (v *fakeView) Line(line int) string {
	if line < 0 || line >= len(v.lines) {
		return ""
	}
	return v.lines[line]
}

func (v *fakeView) Title() string            { return v.title }
func (v *fakeView) CursorLine() int          { return v.cursor }
func (v *fakeView) IsHidden(line int) bool   { return v.hidden[line] }
func (v *fakeView) IsFoldable(line int) bool { return v.foldable[line] }
func (v *fakeView) HiddenAt(line int) int    { return v.anchors[line] }
func (v *fakeView) FoldCount() int           { return len(v.anchors) }

func (v *fakeView) IsFoldAnchor(line int) bool {
	_, ok := v.anchors[line]
	return ok
}

func plainView(n int) *fakeView {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("- item %d", i)
	}
	return &fakeView{lines: lines}
}

func drawFrame(width, height int, f Frame) *Memory {
	m := NewMemory(width, height)
	New(m, zerolog.Nop()).Draw(f)
	return m
}

func TestDrawPlainLines(t *testing.T) {
	v := &fakeView{lines: []string{"- alpha", "\t- beta", "note"}}
	m := drawFrame(40, 5, Frame{View: v, Viewport: &Viewport{}})

	want := []string{"  - alpha", "      - beta", "  note", "~", "~"}
	for row, text := range want {
		if got := m.Row(row); got != text {
			t.Errorf("Draw: expected row %d %q, got %q", row, text, got)
		}
	}

	x, y, shown := m.Cursor()
	if !shown || x != 2 || y != 0 {
		t.Errorf("Draw: expected cursor at (2, 0), got (%d, %d) shown=%v", x, y, shown)
	}
}

func TestDrawSkipsHiddenAndBadges(t *testing.T) {
	v := &fakeView{
		lines: []string{
			"- projects",
			"    - app",
			"        - api",
			"        - ui",
			"- notes",
		},
		hidden:   map[int]bool{2: true, 3: true},
		anchors:  map[int]int{1: 2},
		foldable: map[int]bool{0: true},
	}
	m := drawFrame(40, 4, Frame{View: v, Viewport: &Viewport{}})

	want := []string{"- - projects", "+     - app [+2]", "  - notes", "~"}
	for row, text := range want {
		if got := m.Row(row); got != text {
			t.Errorf("Draw: expected row %d %q, got %q", row, text, got)
		}
	}

	if st := m.StyleAt(0, 1); st.FG != ColorYellow || !st.Bold {
		t.Errorf("Draw: expected bold yellow anchor marker, got %+v", st)
	}
	if st := m.StyleAt(12, 1); st.FG != ColorYellow || !st.Dim {
		t.Errorf("Draw: expected dim yellow badge, got %+v", st)
	}
	if st := m.StyleAt(0, 0); !st.Dim {
		t.Errorf("Draw: expected dim foldable marker, got %+v", st)
	}
}

func TestDrawLineNumbers(t *testing.T) {
	m := drawFrame(40, 15, Frame{View: plainView(12), Viewport: &Viewport{}, ShowLineNumbers: true})

	if got := m.Row(0); got != " 1   - item 0" {
		t.Errorf("Draw: expected row 0 %q, got %q", " 1   - item 0", got)
	}
	if got := m.Row(9); got != "10   - item 9" {
		t.Errorf("Draw: expected row 9 %q, got %q", "10   - item 9", got)
	}
	if st := m.StyleAt(1, 0); !st.Dim {
		t.Errorf("Draw: expected dim line number, got %+v", st)
	}

	x, y, shown := m.Cursor()
	if !shown || x != 5 || y != 0 {
		t.Errorf("Draw: expected cursor at (5, 0), got (%d, %d) shown=%v", x, y, shown)
	}
}

func TestDrawStatusLine(t *testing.T) {
	t.Run("with folds", func(t *testing.T) {
		v := plainView(6)
		v.title = "notes.md"
		v.anchors = map[int]int{1: 1, 3: 1}
		v.hidden = map[int]bool{2: true, 4: true}
		m := drawFrame(60, 5, Frame{View: v, Viewport: &Viewport{}, ShowStatus: true, Message: "folded 2 blocks"})

		row := m.Row(4)
		for _, part := range []string{"notes.md", "folded 2 blocks", "1/6  2 folds"} {
			if !strings.Contains(row, part) {
				t.Errorf("Draw: expected status %q to contain %q", row, part)
			}
		}
		if st := m.StyleAt(0, 4); !st.Reverse {
			t.Errorf("Draw: expected reversed status line, got %+v", st)
		}
	})

	t.Run("without folds", func(t *testing.T) {
		v := plainView(3)
		v.cursor = 2
		m := drawFrame(60, 5, Frame{View: v, Viewport: &Viewport{}, ShowStatus: true})

		row := m.Row(4)
		if !strings.Contains(row, "3/3") {
			t.Errorf("Draw: expected status %q to contain position 3/3", row)
		}
		if strings.Contains(row, "folds") {
			t.Errorf("Draw: expected no fold count in status, got %q", row)
		}
	})
}

func TestDrawScrollsToCursor(t *testing.T) {
	v := plainView(30)
	v.cursor = 20
	vp := &Viewport{}
	m := drawFrame(20, 6, Frame{View: v, Viewport: vp})

	if vp.Top != 15 {
		t.Errorf("Draw: expected viewport top 15, got %d", vp.Top)
	}
	if got := m.Row(0); got != "  - item 15" {
		t.Errorf("Draw: expected row 0 %q, got %q", "  - item 15", got)
	}
	if got := m.Row(5); got != "  - item 20" {
		t.Errorf("Draw: expected row 5 %q, got %q", "  - item 20", got)
	}

	x, y, shown := m.Cursor()
	if !shown || x != 2 || y != 5 {
		t.Errorf("Draw: expected cursor at (2, 5), got (%d, %d) shown=%v", x, y, shown)
	}
}

func TestDrawClipsLongLines(t *testing.T) {
	v := &fakeView{lines: []string{"- " + strings.Repeat("x", 20)}}
	m := drawFrame(10, 2, Frame{View: v, Viewport: &Viewport{}})

	if got := m.Row(0); got != "  - xxxxxx" {
		t.Errorf("Draw: expected clipped row %q, got %q", "  - xxxxxx", got)
	}
}

func TestDrawCursorOnHiddenLine(t *testing.T) {
	v := &fakeView{
		lines:   []string{"- a", "    - b", "    - c", "- d"},
		hidden:  map[int]bool{1: true, 2: true},
		anchors: map[int]int{0: 2},
		cursor:  1,
	}
	m := drawFrame(20, 3, Frame{View: v, Viewport: &Viewport{}})

	if _, _, shown := m.Cursor(); shown {
		t.Error("Draw: expected hidden cursor when cursor line is folded away")
	}
}

func TestDrawNilView(t *testing.T) {
	m := drawFrame(20, 4, Frame{ShowStatus: true})

	for row := 0; row < 3; row++ {
		if got := m.Row(row); got != "~" {
			t.Errorf("Draw: expected row %d %q, got %q", row, "~", got)
		}
	}
	if row := m.Row(3); !strings.Contains(row, "no document") {
		t.Errorf("Draw: expected placeholder status, got %q", row)
	}
	if _, _, shown := m.Cursor(); shown {
		t.Error("Draw: expected hidden cursor with no view")
	}
}
