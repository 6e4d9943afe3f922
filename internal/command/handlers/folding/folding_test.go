package folding

import (
	"errors"
	"testing"

	"github.com/dshills/notefold/internal/command"
	"github.com/dshills/notefold/internal/fold"
)

// stubView records the fold calls handlers make.
type stubView struct {
	lineCount  int
	cursor     int
	foldDeepN  int
	unfoldN    int
	toggleErr  error
	lastLevel  int
	lastToggle int
}

func (v *stubView) LineCount() int            { return v.lineCount }
func (v *stubView) CursorLine() int           { return v.cursor }
func (v *stubView) MoveCursor(delta int) int  { return v.cursor }
func (v *stubView) MoveCursorTo(line int) int { return v.cursor }

func (v *stubView) ToggleFold(line int) (bool, error) {
	v.lastToggle = line
	if v.toggleErr != nil {
		return false, v.toggleErr
	}
	return true, nil
}

func (v *stubView) UnfoldAll() int {
	return v.unfoldN
}

func (v *stubView) FoldDeep(settings fold.Settings) int {
	v.lastLevel = settings.Level
	return v.foldDeepN
}

func ctxWith(v command.View) *command.Context {
	return &command.Context{View: v, Fold: fold.DefaultSettings()}
}

func TestDeepListItems(t *testing.T) {
	v := &stubView{foldDeepN: 3}
	h := New()

	r := h.HandleAction(command.New("fold.deepListItems"), ctxWith(v))
	if !r.IsOK() || !r.Redraw {
		t.Errorf("expected ok with redraw, got %+v", r)
	}
	if v.lastLevel != fold.DefaultLevel {
		t.Errorf("expected configured level %d, got %d", fold.DefaultLevel, v.lastLevel)
	}

	v.foldDeepN = 0
	if r := h.HandleAction(command.New("fold.deepListItems"), ctxWith(v)); r.Status != command.StatusNoOp {
		t.Errorf("nothing folded: expected no-op, got %v", r.Status)
	}
}

func TestDeepListItemsAtDepth(t *testing.T) {
	v := &stubView{foldDeepN: 1}
	h := New()

	r := h.HandleAction(command.New("fold.deepListItemsAtDepth").WithArg("depth", 4), ctxWith(v))
	if !r.IsOK() {
		t.Fatalf("expected ok, got %+v", r)
	}
	if v.lastLevel != 4 {
		t.Errorf("expected level 4, got %d", v.lastLevel)
	}

	// The repeat count stands in for a missing depth argument.
	h.HandleAction(command.New("fold.deepListItemsAtDepth").WithCount(12), ctxWith(v))
	if v.lastLevel != 12 {
		t.Errorf("expected level 12 from count, got %d", v.lastLevel)
	}

	r = h.HandleAction(command.New("fold.deepListItemsAtDepth").WithArg("depth", -4), ctxWith(v))
	if !r.IsError() {
		t.Errorf("negative depth: expected error, got %v", r.Status)
	}
}

func TestToggle(t *testing.T) {
	v := &stubView{cursor: 7}
	h := New()

	r := h.HandleAction(command.New("fold.toggle"), ctxWith(v))
	if !r.IsOK() || !r.Redraw {
		t.Errorf("expected ok with redraw, got %+v", r)
	}
	if v.lastToggle != 7 {
		t.Errorf("expected toggle at cursor line 7, got %d", v.lastToggle)
	}

	v.toggleErr = errors.New("nothing to fold here")
	r = h.HandleAction(command.New("fold.toggle"), ctxWith(v))
	if r.Status != command.StatusNoOp {
		t.Errorf("unfoldable line: expected no-op, got %v", r.Status)
	}
	if r.Message == "" {
		t.Error("expected the reason in the message")
	}
}

func TestUnfoldAll(t *testing.T) {
	h := New()

	r := h.HandleAction(command.New("fold.unfoldAll"), ctxWith(&stubView{unfoldN: 2}))
	if !r.IsOK() || !r.Redraw {
		t.Errorf("expected ok with redraw, got %+v", r)
	}

	r = h.HandleAction(command.New("fold.unfoldAll"), ctxWith(&stubView{}))
	if r.Status != command.StatusNoOp {
		t.Errorf("no folds: expected no-op, got %v", r.Status)
	}
}

func TestNilView(t *testing.T) {
	h := New()
	for _, name := range []string{"fold.deepListItems", "fold.deepListItemsAtDepth", "fold.toggle", "fold.unfoldAll"} {
		r := h.HandleAction(command.New(name), &command.Context{})
		if r.Status != command.StatusNoOp {
			t.Errorf("%s with no view: expected no-op, got %v", name, r.Status)
		}
	}
}
