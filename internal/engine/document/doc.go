// Package document provides a thread-safe, line-oriented text document.
// It is the read surface the folding engine and renderer work against.
//
// A document stores its content as a slice of lines with the line
// terminators stripped. Content is replaced wholesale rather than edited
// in place, so the line slice of any given revision is immutable and can
// be shared freely with concurrent readers through Snapshot.
//
// Basic usage:
//
//	doc := document.NewFromString(text, document.WithPath("notes.md"))
//
//	for i := 0; i < doc.LineCount(); i++ {
//	    process(doc.Line(i))
//	}
//
//	// Consistent view across many reads
//	snap := doc.Snapshot()
//
// Lines are 0-indexed. Reading a line outside the document returns the
// empty string rather than an error.
package document
