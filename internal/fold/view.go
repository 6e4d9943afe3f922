package fold

// View is the capability surface the folding engine needs from a host
// editor view. Lines are 0-indexed.
type View interface {
	// LineCount returns the number of lines in the document.
	LineCount() int

	// Line returns the text of a line. Out-of-range lines read as the
	// empty string.
	Line(line int) string

	// BlockSpan resolves the item block containing the given line.
	// ok is false when the line is not part of any block.
	BlockSpan(line int) (span Span, ok bool)

	// FoldableRange returns the collapsible region for a block. ok is
	// false when the block has no region the host will fold: the anchor
	// is already concealed, the same region is already folded, or the
	// host cannot fold there at all.
	FoldableRange(span Span) (region Region, ok bool)

	// ApplyFold collapses the region.
	ApplyFold(region Region)
}
