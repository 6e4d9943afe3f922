// Package renderer draws the editor screen.
//
// Drawing goes through the Backend interface; Terminal is the tcell
// implementation and Memory is an in-memory grid for tests. A Frame
// describes one complete screen: the view, the viewport, and the status
// message. The renderer shows only visible lines, marks foldable and
// folded lines in the gutter, and appends a hidden-line badge after
// each folded anchor.
//
// The Viewport is fold-aware: scrolling positions are counted in
// visible lines, so a screenful of content is a screenful regardless of
// how much is folded away underneath.
package renderer
