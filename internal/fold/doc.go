// Package fold implements automatic depth-based folding of indented
// bullet outlines.
//
// The engine runs against a host View rather than a concrete document,
// so the same passes work over the live editor view and over fakes in
// tests. A pass claims candidate list-item lines one at a time, resolves
// each item's block through the view, and collapses the block's foldable
// region. A claimed line is never revisited within a pass, which bounds
// every pass by the line count no matter how the host answers.
//
// FoldDeep folds a document down to a configured indentation level. In
// recursive mode it makes one pass per indentation level starting at the
// deepest, so inner branches collapse before the branches that contain
// them and expanding a parent later reveals still-collapsed children.
//
// State tracks the collapsed regions of one view and answers the
// visibility queries cursor movement and rendering need. Trigger watches
// the event bus for opened documents and, when the configured method
// applies to the document's tags, schedules an automatic FoldDeep
// shortly after the open.
package fold
