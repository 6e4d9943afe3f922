package renderer

import "testing"

func TestEnsureVisible(t *testing.T) {
	tests := []struct {
		name    string
		top     int
		height  int
		off     int
		cursor  int
		hidden  []int
		wantTop int
	}{
		{"cursor already inside", 5, 10, 2, 9, nil, 5},
		{"scrolls down to margin", 0, 10, 2, 15, nil, 8},
		{"scrolls up to margin", 10, 10, 2, 5, nil, 3},
		{"top clamped to cursor", 20, 10, 2, 0, nil, 0},
		{"hidden lines free rows", 0, 5, 0, 12, []int{3, 4, 5, 6, 7, 8, 9}, 1},
		{"margin clamped to half height", 0, 4, 5, 20, nil, 18},
		{"zero height resets", 7, 0, 0, 3, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := plainView(30)
			if len(tt.hidden) > 0 {
				v.hidden = make(map[int]bool)
				for _, line := range tt.hidden {
					v.hidden[line] = true
				}
			}
			vp := &Viewport{Top: tt.top, Height: tt.height, ScrollOff: tt.off}
			vp.EnsureVisible(v, tt.cursor)
			if vp.Top != tt.wantTop {
				t.Errorf("EnsureVisible(cursor %d): expected top %d, got %d", tt.cursor, tt.wantTop, vp.Top)
			}
		})
	}
}

func TestEnsureVisibleEmptyView(t *testing.T) {
	vp := &Viewport{Top: 4, Height: 10}
	vp.EnsureVisible(&fakeView{}, 0)
	if vp.Top != 0 {
		t.Errorf("EnsureVisible on empty view: expected top 0, got %d", vp.Top)
	}
}

func TestEnsureVisibleStable(t *testing.T) {
	v := plainView(30)
	vp := &Viewport{Height: 10, ScrollOff: 2}
	vp.EnsureVisible(v, 15)
	first := vp.Top
	vp.EnsureVisible(v, 15)
	if vp.Top != first {
		t.Errorf("EnsureVisible twice: top moved from %d to %d", first, vp.Top)
	}
}
