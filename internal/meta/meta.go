// Package meta extracts metadata from note documents: a YAML front
// matter block and inline #tags in the body. The tags feed the automatic
// fold gate, which can be configured to fold only tagged documents.
package meta

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/dshills/notefold/internal/fold"
)

// Metadata is what a document declares about itself.
type Metadata struct {
	// Title from the front matter, empty when absent.
	Title string

	// Tags collected from the front matter and the body, normalized
	// with fold.NormalizeTag and deduplicated in encounter order.
	Tags []string
}

// frontMatter is the subset of the YAML block this program reads.
// Unknown keys are ignored.
type frontMatter struct {
	Title string `yaml:"title"`
	Tags  any    `yaml:"tags"`
}

// Parse extracts metadata from document lines. A front matter block is a
// leading "---" fence closed by another "---"; malformed YAML inside it
// is ignored without error. Inline tags are collected from the body
// outside fenced code blocks.
func Parse(lines []string) Metadata {
	var md Metadata
	seen := make(map[string]struct{})
	add := func(tag string) {
		norm := fold.NormalizeTag(tag)
		if norm == "" {
			return
		}
		if _, dup := seen[norm]; dup {
			return
		}
		seen[norm] = struct{}{}
		md.Tags = append(md.Tags, norm)
	}

	block, bodyStart := frontMatterBlock(lines)
	if block != nil {
		var fm frontMatter
		if err := yaml.Unmarshal([]byte(strings.Join(block, "\n")), &fm); err == nil {
			md.Title = fm.Title
			for _, tag := range frontMatterTags(fm.Tags) {
				add(tag)
			}
		}
	}

	fence := ""
	for _, line := range lines[bodyStart:] {
		trimmed := strings.TrimSpace(line)
		if marker := fenceMarker(trimmed); marker != "" {
			switch {
			case fence == "":
				fence = marker
			case strings.HasPrefix(trimmed, fence):
				fence = ""
			}
			continue
		}
		if fence != "" {
			continue
		}
		inlineTags(line, add)
	}
	return md
}

// ParseString extracts metadata from raw text.
func ParseString(text string) Metadata {
	return Parse(strings.Split(text, "\n"))
}

// frontMatterBlock returns the lines between the front matter fences and
// the index of the first body line. With no front matter the block is
// nil and the body starts at line 0; an unterminated opening fence is
// treated as body.
func frontMatterBlock(lines []string) ([]string, int) {
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t") != "---" {
		return nil, 0
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t") == "---" {
			return lines[1:i], i + 1
		}
	}
	return nil, 0
}

// frontMatterTags flattens the YAML tags value. A sequence contributes
// one tag per element; a scalar string is split on commas and
// whitespace.
func frontMatterTags(v any) []string {
	switch tags := v.(type) {
	case []any:
		out := make([]string, 0, len(tags))
		for _, t := range tags {
			switch tag := t.(type) {
			case string:
				out = append(out, tag)
			case int, int64, uint64, float64:
				out = append(out, fmt.Sprint(tag))
			}
		}
		return out
	case string:
		return strings.FieldsFunc(tags, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
	default:
		return nil
	}
}

// fenceMarker returns the code fence marker opening or closing on this
// line, or "" for ordinary lines.
func fenceMarker(trimmed string) string {
	switch {
	case strings.HasPrefix(trimmed, "```"):
		return "```"
	case strings.HasPrefix(trimmed, "~~~"):
		return "~~~"
	default:
		return ""
	}
}

// inlineTags scans one body line for #tags. A tag starts with '#' at the
// line start or after whitespace and runs over letters, digits, '-',
// '_' and '/'. A '#' followed by anything else, such as a markdown
// heading marker, is not a tag.
func inlineTags(line string, add func(string)) {
	boundary := true
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		if r == '#' && boundary {
			tag, width := takeTag(line[i+size:])
			if tag != "" {
				add(tag)
				i += size + width
				boundary = false
				continue
			}
		}
		boundary = unicode.IsSpace(r)
		i += size
	}
}

// takeTag returns the tag text at the start of s and its byte width.
func takeTag(s string) (string, int) {
	end := 0
	for end < len(s) {
		r, size := utf8.DecodeRuneInString(s[end:])
		if !isTagRune(r) {
			break
		}
		end += size
	}
	return s[:end], end
}

func isTagRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '/'
}
