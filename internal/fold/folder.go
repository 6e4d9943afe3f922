package fold

import (
	"github.com/rs/zerolog"

	"github.com/dshills/notefold/internal/engine/indent"
)

// Folder runs folding passes over a host view.
type Folder struct {
	log zerolog.Logger
}

// NewFolder creates a folder that traces its passes to the given logger.
func NewFolder(log zerolog.Logger) *Folder {
	return &Folder{log: log.With().Str("component", "folder").Logger()}
}

// visited tracks the lines a pass has already claimed.
type visited map[int]struct{}

// nextCandidate returns the first unclaimed list-item line indented at
// least minDepth, claiming it before returning. A line is claimed the
// moment it is returned, so a candidate that produces no fold is never
// retried. ok is false when no candidate remains.
func nextCandidate(v View, claimed visited, minDepth int) (int, bool) {
	count := v.LineCount()
	for line := 0; line < count; line++ {
		if _, ok := claimed[line]; ok {
			continue
		}
		text := v.Line(line)
		if indent.Depth(text) < minDepth {
			continue
		}
		if !indent.IsListItem(text) {
			continue
		}
		claimed[line] = struct{}{}
		return line, true
	}
	return 0, false
}

// FoldAtDepth runs a single folding pass over the view, collapsing the
// block of every list item indented at least minDepth. It returns the
// number of folds applied.
func (f *Folder) FoldAtDepth(v View, minDepth int) int {
	claimed := make(visited)
	applied := 0
	for {
		line, ok := nextCandidate(v, claimed, minDepth)
		if !ok {
			break
		}
		span, ok := v.BlockSpan(line)
		if !ok {
			continue
		}
		region, ok := v.FoldableRange(span)
		if !ok || region.Empty() {
			// Leaf item or nothing foldable there. The line stays
			// claimed and the pass moves on.
			continue
		}
		v.ApplyFold(region)
		applied++
	}

	f.log.Debug().Int("min_depth", minDepth).Int("applied", applied).Msg("fold pass complete")
	return applied
}

// FoldDeep folds the view down to the level given by the settings. In
// recursive mode it runs one pass per indentation level from the deepest
// multiple of four down to the level, deepest first, so inner branches
// collapse before the branches containing them. It returns the total
// number of folds applied.
func (f *Folder) FoldDeep(v View, s Settings) int {
	if !s.Recursive {
		return f.FoldAtDepth(v, s.Level)
	}

	deepest := maxViewDepth(v)
	start := deepest - deepest%indent.TabWidth
	applied := 0
	for depth := start; depth >= s.Level; depth -= indent.TabWidth {
		applied += f.FoldAtDepth(v, depth)
	}
	return applied
}

// maxViewDepth returns the greatest indentation depth over the view's
// lines, 0 for an empty view.
func maxViewDepth(v View) int {
	deepest := 0
	count := v.LineCount()
	for line := 0; line < count; line++ {
		if d := indent.Depth(v.Line(line)); d > deepest {
			deepest = d
		}
	}
	return deepest
}
