package document

import (
	"strings"
	"sync"
	"testing"
)

func TestNewDocument(t *testing.T) {
	d := New()

	if !d.IsEmpty() {
		t.Error("new document should be empty")
	}

	if d.LineCount() != 0 {
		t.Errorf("expected 0 lines, got %d", d.LineCount())
	}

	if d.ID() == "" {
		t.Error("document should have an ID")
	}
}

func TestNewFromString(t *testing.T) {
	d := NewFromString("line1\nline2\nline3")

	if d.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", d.LineCount())
	}

	if d.Line(0) != "line1" {
		t.Errorf("expected line1, got %q", d.Line(0))
	}

	if d.Line(2) != "line3" {
		t.Errorf("expected line3, got %q", d.Line(2))
	}
}

func TestNewFromStringTrailingNewline(t *testing.T) {
	d := NewFromString("line1\nline2\n")

	if d.LineCount() != 2 {
		t.Errorf("trailing newline should not add a line, got %d lines", d.LineCount())
	}
}

func TestNewFromStringEmpty(t *testing.T) {
	d := NewFromString("")

	if d.LineCount() != 0 {
		t.Errorf("empty text should produce 0 lines, got %d", d.LineCount())
	}
}

func TestLineOutOfRange(t *testing.T) {
	d := NewFromString("only line")

	if d.Line(-1) != "" {
		t.Errorf("negative line should be empty, got %q", d.Line(-1))
	}

	if d.Line(1) != "" {
		t.Errorf("past-end line should be empty, got %q", d.Line(1))
	}
}

func TestLineEndingNormalization(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines []string
	}{
		{"crlf", "a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"cr", "a\rb\rc", []string{"a", "b", "c"}},
		{"mixed", "a\r\nb\nc\r", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		d := NewFromString(tt.text)
		if d.LineCount() != len(tt.lines) {
			t.Errorf("%s: expected %d lines, got %d", tt.name, len(tt.lines), d.LineCount())
			continue
		}
		for i, want := range tt.lines {
			if d.Line(i) != want {
				t.Errorf("%s: line %d: expected %q, got %q", tt.name, i, want, d.Line(i))
			}
		}
	}
}

func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		text     string
		expected LineEnding
	}{
		{"no endings", LineEndingLF},
		{"a\nb", LineEndingLF},
		{"a\r\nb", LineEndingCRLF},
		{"a\rb", LineEndingCR},
		{"a\r\nb\r\nc\nd", LineEndingCRLF},
	}

	for _, tt := range tests {
		got := DetectLineEnding(tt.text)
		if got != tt.expected {
			t.Errorf("DetectLineEnding(%q): expected %v, got %v", tt.text, tt.expected, got)
		}
	}
}

func TestText(t *testing.T) {
	d := NewFromString("a\r\nb\r\nc")

	if d.LineEnding() != LineEndingCRLF {
		t.Errorf("expected CRLF detection, got %v", d.LineEnding())
	}

	if d.Text() != "a\r\nb\r\nc" {
		t.Errorf("expected CRLF join, got %q", d.Text())
	}
}

func TestSetText(t *testing.T) {
	d := NewFromString("old")
	rev := d.RevisionID()

	d.SetText("new1\nnew2")

	if d.LineCount() != 2 {
		t.Errorf("expected 2 lines after SetText, got %d", d.LineCount())
	}

	if d.RevisionID() == rev {
		t.Error("SetText should bump the revision")
	}
}

func TestOptions(t *testing.T) {
	d := NewFromString("x", WithPath("/tmp/notes.md"), WithLineEnding(LineEndingCRLF))

	if d.Path() != "/tmp/notes.md" {
		t.Errorf("expected path /tmp/notes.md, got %q", d.Path())
	}

	if d.LineEnding() != LineEndingCRLF {
		t.Errorf("expected CRLF, got %v", d.LineEnding())
	}
}

func TestNewFromReader(t *testing.T) {
	d, err := NewFromReader(strings.NewReader("a\nb"), WithPath("r.md"))
	if err != nil {
		t.Fatalf("NewFromReader failed: %v", err)
	}

	if d.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", d.LineCount())
	}

	if d.Path() != "r.md" {
		t.Errorf("expected path r.md, got %q", d.Path())
	}
}

func TestSnapshotIsolation(t *testing.T) {
	d := NewFromString("a\nb")
	snap := d.Snapshot()

	d.SetText("changed")

	if snap.LineCount() != 2 {
		t.Errorf("snapshot should keep 2 lines, got %d", snap.LineCount())
	}

	if snap.Line(0) != "a" {
		t.Errorf("snapshot line 0 should stay %q, got %q", "a", snap.Line(0))
	}

	if d.RevisionID() == snap.RevisionID() {
		t.Error("document revision should differ from snapshot after SetText")
	}
}

func TestConcurrentReadWrite(t *testing.T) {
	d := NewFromString("seed")

	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				d.SetText("a\nb\nc")
			}
		}()
	}

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_ = d.Text()
				_ = d.LineCount()
				_ = d.Snapshot().Lines()
			}
		}()
	}

	wg.Wait()

	if d.LineCount() != 3 {
		t.Errorf("expected 3 lines after writers finish, got %d", d.LineCount())
	}
}
