package fold

import "sync"

// State tracks the collapsed regions of a single view. Regions produced
// from list-item blocks nest but never partially overlap, and the
// outermost region wins every visibility query. All methods are safe for
// concurrent use.
type State struct {
	mu      sync.RWMutex
	regions []Region // ordered by Anchor ascending, wider regions first
}

// NewState creates an empty fold state.
func NewState() *State {
	return &State{}
}

// Apply records a collapsed region. Empty regions and exact duplicates
// are ignored. It reports whether the region was added.
func (s *State) Apply(r Region) bool {
	if r.Empty() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := len(s.regions)
	for i, existing := range s.regions {
		if existing == r {
			return false
		}
		if existing.Anchor > r.Anchor || (existing.Anchor == r.Anchor && existing.Last < r.Last) {
			idx = i
			break
		}
	}

	s.regions = append(s.regions, Region{})
	copy(s.regions[idx+1:], s.regions[idx:])
	s.regions[idx] = r
	return true
}

// Contains reports whether the exact region is currently folded.
func (s *State) Contains(r Region) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, existing := range s.regions {
		if existing == r {
			return true
		}
		if existing.Anchor > r.Anchor {
			break
		}
	}
	return false
}

// covering returns the outermost region concealing the line. The caller
// must hold at least a read lock. Ordering puts outer regions before the
// regions nested inside them, so the first hit is the outermost.
func (s *State) covering(line int) (Region, bool) {
	for _, r := range s.regions {
		if r.Anchor >= line {
			break
		}
		if r.Hides(line) {
			return r, true
		}
	}
	return Region{}, false
}

// IsHidden reports whether the line is concealed by a folded region.
func (s *State) IsHidden(line int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, hidden := s.covering(line)
	return hidden
}

// Covering returns the outermost folded region concealing the line.
func (s *State) Covering(line int) (Region, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.covering(line)
}

// RegionAt returns the outermost folded region anchored exactly at the
// line.
func (s *State) RegionAt(anchor int) (Region, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.regions {
		if r.Anchor == anchor {
			return r, true
		}
		if r.Anchor > anchor {
			break
		}
	}
	return Region{}, false
}

// IsAnchor reports whether a folded region is anchored at the line and
// the line itself is visible.
func (s *State) IsAnchor(line int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, hidden := s.covering(line); hidden {
		return false
	}
	for _, r := range s.regions {
		if r.Anchor == line {
			return true
		}
		if r.Anchor > line {
			break
		}
	}
	return false
}

// Unfold removes the outermost region anchored at the line, leaving any
// regions nested inside it collapsed. It returns the removed region.
func (s *State) Unfold(line int) (Region, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.regions {
		if r.Anchor == line {
			s.regions = append(s.regions[:i], s.regions[i+1:]...)
			return r, true
		}
		if r.Anchor > line {
			break
		}
	}
	return Region{}, false
}

// UnfoldAll removes every folded region and returns how many there were.
func (s *State) UnfoldAll() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.regions)
	s.regions = nil
	return n
}

// Count returns the number of folded regions.
func (s *State) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.regions)
}

// Regions returns a copy of all folded regions, ordered by anchor.
func (s *State) Regions() []Region {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Region, len(s.regions))
	copy(out, s.regions)
	return out
}

// NextVisible returns the first line at or after the given line that is
// not concealed.
func (s *State) NextVisible(line int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for {
		r, hidden := s.covering(line)
		if !hidden {
			return line
		}
		line = r.Last + 1
	}
}

// PrevVisible returns the nearest line at or before the given line that
// is not concealed. Anchors stay visible, so this lands on the anchor of
// the outermost region concealing the line.
func (s *State) PrevVisible(line int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for {
		r, hidden := s.covering(line)
		if !hidden {
			return line
		}
		line = r.Anchor
	}
}

// VisibleCount returns how many of the first total lines are visible.
func (s *State) VisibleCount(total int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hidden := 0
	end := -1 // last hidden line already counted
	for _, r := range s.regions {
		a, b := r.Anchor+1, r.Last
		if b >= total {
			b = total - 1
		}
		if a > b {
			continue
		}
		switch {
		case a > end:
			hidden += b - a + 1
			end = b
		case b > end:
			hidden += b - end
			end = b
		}
	}
	return total - hidden
}
