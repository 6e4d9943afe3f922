package document

import "strings"

// Snapshot provides a read-only view of a document at a specific point in
// time. It is safe for concurrent access and will not change even if the
// original document is modified.
type Snapshot struct {
	id         string
	path       string
	lines      []string
	revisionID RevisionID
	lineEnding LineEnding
}

// ID returns the document's unique identifier.
func (s *Snapshot) ID() string {
	return s.id
}

// Path returns the file path associated with the document, if any.
func (s *Snapshot) Path() string {
	return s.path
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() int {
	return len(s.lines)
}

// Line returns the text of a specific line without its terminator.
// Out-of-range lines read as the empty string.
func (s *Snapshot) Line(line int) string {
	if line < 0 || line >= len(s.lines) {
		return ""
	}
	return s.lines[line]
}

// Lines returns a copy of all lines.
func (s *Snapshot) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Text returns the full snapshot content joined with the snapshot's line
// ending sequence.
func (s *Snapshot) Text() string {
	return strings.Join(s.lines, s.lineEnding.Sequence())
}

// IsEmpty returns true if the snapshot has no lines.
func (s *Snapshot) IsEmpty() bool {
	return len(s.lines) == 0
}

// RevisionID returns the revision ID of this snapshot.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}

// LineEnding returns the snapshot's line ending style.
func (s *Snapshot) LineEnding() LineEnding {
	return s.lineEnding
}
