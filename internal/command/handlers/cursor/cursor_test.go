package cursor

import (
	"testing"

	"github.com/dshills/notefold/internal/command"
	"github.com/dshills/notefold/internal/fold"
)

// stubView models a 50-line document with an unconstrained cursor.
type stubView struct {
	lineCount int
	cursor    int
}

func (v *stubView) LineCount() int  { return v.lineCount }
func (v *stubView) CursorLine() int { return v.cursor }

func (v *stubView) MoveCursor(delta int) int {
	return v.MoveCursorTo(v.cursor + delta)
}

func (v *stubView) MoveCursorTo(line int) int {
	if line < 0 {
		line = 0
	}
	if line >= v.lineCount {
		line = v.lineCount - 1
	}
	v.cursor = line
	return v.cursor
}

func (v *stubView) ToggleFold(int) (bool, error)   { return false, nil }
func (v *stubView) UnfoldAll() int                 { return 0 }
func (v *stubView) FoldDeep(fold.Settings) int     { return 0 }

func dispatch(t *testing.T, v command.View, action command.Action, page int) command.Result {
	t.Helper()
	return New().HandleAction(action, &command.Context{View: v, PageLines: page})
}

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		action     command.Action
		start      int
		page       int
		wantCursor int
		wantStatus command.Status
	}{
		{"down", command.New("cursor.moveDown"), 10, 0, 11, command.StatusOK},
		{"down with count", command.New("cursor.moveDown").WithCount(5), 10, 0, 15, command.StatusOK},
		{"up", command.New("cursor.moveUp"), 10, 0, 9, command.StatusOK},
		{"up at top", command.New("cursor.moveUp"), 0, 0, 0, command.StatusNoOp},
		{"down at bottom", command.New("cursor.moveDown"), 49, 0, 49, command.StatusNoOp},
		{"page down", command.New("cursor.pageDown"), 0, 15, 15, command.StatusOK},
		{"page up", command.New("cursor.pageUp"), 40, 15, 25, command.StatusOK},
		{"page down default size", command.New("cursor.pageDown"), 0, 0, 20, command.StatusOK},
		{"top", command.New("cursor.top"), 30, 0, 0, command.StatusOK},
		{"top already there", command.New("cursor.top"), 0, 0, 0, command.StatusNoOp},
		{"bottom", command.New("cursor.bottom"), 0, 0, 49, command.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &stubView{lineCount: 50, cursor: tt.start}
			r := dispatch(t, v, tt.action, tt.page)
			if r.Status != tt.wantStatus {
				t.Errorf("expected status %v, got %v", tt.wantStatus, r.Status)
			}
			if v.cursor != tt.wantCursor {
				t.Errorf("expected cursor %d, got %d", tt.wantCursor, v.cursor)
			}
			if tt.wantStatus == command.StatusOK && !r.Redraw {
				t.Error("movement should request a redraw")
			}
		})
	}
}

func TestNilView(t *testing.T) {
	h := New()
	for _, name := range h.(*command.Base).Actions() {
		r := h.HandleAction(command.New(name), &command.Context{})
		if r.Status != command.StatusNoOp {
			t.Errorf("%s with no view: expected no-op, got %v", name, r.Status)
		}
	}
}
