package indent

import "testing"

func TestDepth(t *testing.T) {
	tests := []struct {
		line     string
		expected int
	}{
		{"", 0},
		{"- top", 0},
		{"no marker", 0},
		{"  - two spaces", 2},
		{"    - four spaces", 4},
		{"\t- one tab", 4},
		{"\t\t- two tabs", 8},
		{"  \t- spaces then tab", 6},
		{"\t  - tab then spaces", 6},
		{"        - eight spaces", 8},
		{"    ", 4},
		{"\t", 4},
	}

	for _, tt := range tests {
		got := Depth(tt.line)
		if got != tt.expected {
			t.Errorf("Depth(%q): expected %d, got %d", tt.line, tt.expected, got)
		}
	}
}

func TestDepthCountsAllTabsAsFour(t *testing.T) {
	// Expansion is fixed width, not tab-stop aligned. A tab after three
	// spaces still counts four, giving depth 7 rather than a stop at 4.
	if got := Depth("   \tx"); got != 7 {
		t.Errorf("Depth(\"   \\tx\"): expected 7, got %d", got)
	}
}

func TestMaxDepth(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected int
	}{
		{"empty document", nil, 0},
		{"single flat line", []string{"- a"}, 0},
		{"mixed depths", []string{"- a", "    - b", "        - c", "    - d"}, 8},
		{"tabs and spaces", []string{"\t- a", "        - b", "\t\t\t- c"}, 12},
		{"blank lines ignored for depth", []string{"", "- a", ""}, 0},
	}

	for _, tt := range tests {
		got := MaxDepth(tt.lines)
		if got != tt.expected {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.expected, got)
		}
	}
}

func TestIsListItem(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"- item", true},
		{"-", true},
		{"  - indented item", true},
		{"\t- tabbed item", true},
		{"-no space after marker", true},
		{"--- fence", true},
		{"* star item", false},
		{"plain text", false},
		{"", false},
		{"   ", false},
	}

	for _, tt := range tests {
		got := IsListItem(tt.line)
		if got != tt.expected {
			t.Errorf("IsListItem(%q): expected %v, got %v", tt.line, tt.expected, got)
		}
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"no tabs", "no tabs"},
		{"\ta", "    a"},
		{"\t\t- b", "        - b"},
		{"a\tb", "a    b"},
	}

	for _, tt := range tests {
		got := Expand(tt.input)
		if got != tt.expected {
			t.Errorf("Expand(%q): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}
