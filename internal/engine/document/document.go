package document

import (
	"io"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingLF:
		return "\\n"
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// RevisionID uniquely identifies a document revision.
// Each content replacement creates a new revision.
type RevisionID uint64

var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
// This is thread-safe using atomic operations.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}

// Document is a thread-safe, line-oriented text document.
// All methods are safe for concurrent use.
type Document struct {
	mu         sync.RWMutex
	id         string
	path       string
	lines      []string
	revisionID RevisionID
	lineEnding LineEnding
}

// New creates a new empty document.
func New(opts ...Option) *Document {
	d := &Document{
		id:         uuid.NewString(),
		revisionID: NewRevisionID(),
		lineEnding: LineEndingLF,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// NewFromString creates a document with initial content. The line ending
// style is detected from the content unless an option overrides it.
func NewFromString(text string, opts ...Option) *Document {
	d := New(WithDetectedLineEnding(text))
	for _, opt := range opts {
		opt(d)
	}
	d.lines = splitLines(text)
	return d
}

// NewFromReader creates a document from an io.Reader.
func NewFromReader(r io.Reader, opts ...Option) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewFromString(string(data), opts...), nil
}

// splitLines splits text into lines with terminators stripped. All three
// line ending styles are recognized. A trailing terminator does not
// produce a final empty line, and empty text produces no lines at all.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// Read Operations

// ID returns the document's unique identifier.
func (d *Document) ID() string {
	return d.id
}

// Path returns the file path associated with the document, if any.
func (d *Document) Path() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.path
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.lines)
}

// Line returns the text of a specific line without its terminator.
// Out-of-range lines read as the empty string.
func (d *Document) Line(line int) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if line < 0 || line >= len(d.lines) {
		return ""
	}
	return d.lines[line]
}

// Lines returns a copy of all lines.
func (d *Document) Lines() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// Text returns the full document content joined with the document's line
// ending sequence.
func (d *Document) Text() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return strings.Join(d.lines, d.lineEnding.Sequence())
}

// IsEmpty returns true if the document has no lines.
func (d *Document) IsEmpty() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.lines) == 0
}

// Write Operations

// SetText replaces the whole document content and bumps the revision.
func (d *Document) SetText(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lines = splitLines(text)
	d.revisionID = NewRevisionID()
}

// SetPath sets the file path associated with the document.
func (d *Document) SetPath(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.path = path
}

// Document State

// RevisionID returns the current revision ID.
func (d *Document) RevisionID() RevisionID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.revisionID
}

// LineEnding returns the document's line ending style.
func (d *Document) LineEnding() LineEnding {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lineEnding
}

// Snapshot returns a read-only snapshot of the current document state.
// Safe for concurrent access from other goroutines.
func (d *Document) Snapshot() *Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return &Snapshot{
		id:         d.id,
		path:       d.path,
		lines:      d.lines, // replaced wholesale, never mutated in place
		revisionID: d.revisionID,
		lineEnding: d.lineEnding,
	}
}
