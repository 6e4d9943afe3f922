package meta

import (
	"reflect"
	"testing"
)

func TestParseFrontMatter(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantTitle string
		wantTags  []string
	}{
		{
			name:      "tag sequence",
			text:      "---\ntitle: Weekly Plan\ntags:\n  - work\n  - Planning\n---\n- item",
			wantTitle: "Weekly Plan",
			wantTags:  []string{"work", "planning"},
		},
		{
			name:     "flow sequence",
			text:     "---\ntags: [notes, detail]\n---\n",
			wantTags: []string{"notes", "detail"},
		},
		{
			name:     "scalar with commas",
			text:     "---\ntags: work, home\n---\n",
			wantTags: []string{"work", "home"},
		},
		{
			name:     "scalar with spaces",
			text:     "---\ntags: work home\n---\n",
			wantTags: []string{"work", "home"},
		},
		{
			name:     "numeric tag",
			text:     "---\ntags:\n  - 2026\n---\n",
			wantTags: []string{"2026"},
		},
		{
			name:     "hash prefixes stripped",
			text:     "---\ntags: [\"#work\", \"#Home\"]\n---\n",
			wantTags: []string{"work", "home"},
		},
		{
			name: "no front matter",
			text: "- item one\n- item two",
		},
		{
			name: "unterminated fence is body",
			text: "---\ntags: [work]\n- item",
		},
		{
			name:     "malformed yaml ignored",
			text:     "---\ntags: [unclosed\n: bad\n---\nbody #rescued",
			wantTags: []string{"rescued"},
		},
		{
			name:      "unknown keys ignored",
			text:      "---\ntitle: Log\nauthor: someone\nextra: 3\n---\n",
			wantTitle: "Log",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := ParseString(tt.text)
			if md.Title != tt.wantTitle {
				t.Errorf("title: expected %q, got %q", tt.wantTitle, md.Title)
			}
			if !reflect.DeepEqual(md.Tags, tt.wantTags) {
				t.Errorf("tags: expected %v, got %v", tt.wantTags, md.Tags)
			}
		})
	}
}

func TestParseInlineTags(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "line start and mid line",
			text: "#work\nsome text #home done",
			want: []string{"work", "home"},
		},
		{
			name: "heading is not a tag",
			text: "# Heading\n## Another",
			want: nil,
		},
		{
			name: "no boundary before hash",
			text: "issue#42 is not a tag",
			want: nil,
		},
		{
			name: "nested tag path",
			text: "- review #project/alpha today",
			want: []string{"project/alpha"},
		},
		{
			name: "deduplicated case insensitively",
			text: "#Work then #work again",
			want: []string{"work"},
		},
		{
			name: "code fences skipped",
			text: "```\n#notatag\n```\n#real\n~~~\n#alsonot\n~~~",
			want: []string{"real"},
		},
		{
			name: "mismatched fence markers stay open",
			text: "```\n~~~\n#hidden\n```\n#seen",
			want: []string{"seen"},
		},
		{
			name: "unicode tag",
			text: "notiz #büro heute",
			want: []string{"büro"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md := ParseString(tt.text)
			if !reflect.DeepEqual(md.Tags, tt.want) {
				t.Errorf("tags: expected %v, got %v", tt.want, md.Tags)
			}
		})
	}
}

func TestParseCombinedSources(t *testing.T) {
	text := "---\ntitle: Inbox\ntags: [work]\n---\n- call #home\n- mail #work"
	md := ParseString(text)

	if md.Title != "Inbox" {
		t.Errorf("title: expected %q, got %q", "Inbox", md.Title)
	}
	// Front matter tags come first; the inline duplicate of "work" is
	// dropped.
	want := []string{"work", "home"}
	if !reflect.DeepEqual(md.Tags, want) {
		t.Errorf("tags: expected %v, got %v", want, md.Tags)
	}
}

func TestParseEmpty(t *testing.T) {
	md := Parse(nil)
	if md.Title != "" || md.Tags != nil {
		t.Errorf("expected zero metadata, got %+v", md)
	}
}
