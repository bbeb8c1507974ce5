// Package java renders ir declarations into Java source text.
package java

import (
	"strings"

	"github.com/javagen-io/javagen/ir"
)

// CodeWriter accumulates Java source text. It implements ir.Sink: emittable
// values write literal fragments through it and the writer inserts the
// current indentation at the start of every non-empty line. A CodeWriter is
// a sequential resource and must not be shared by concurrent emissions.
type CodeWriter struct {
	sb          strings.Builder
	indentUnit  string
	level       int
	atLineStart bool
}

// NewCodeWriter returns a writer indenting with the given unit, e.g. "  "
// or "\t". An empty unit defaults to two spaces.
func NewCodeWriter(indentUnit string) *CodeWriter {
	if indentUnit == "" {
		indentUnit = "  "
	}
	return &CodeWriter{indentUnit: indentUnit, atLineStart: true}
}

// WriteLiteral appends text. Newlines embedded in text reset the line state
// so the following content is indented.
func (w *CodeWriter) WriteLiteral(text string) error {
	for len(text) > 0 {
		nl := strings.IndexByte(text, '\n')
		line := text
		if nl >= 0 {
			line = text[:nl]
			text = text[nl+1:]
		} else {
			text = ""
		}
		if line != "" {
			if w.atLineStart {
				for i := 0; i < w.level; i++ {
					w.sb.WriteString(w.indentUnit)
				}
				w.atLineStart = false
			}
			w.sb.WriteString(line)
		}
		if nl >= 0 {
			w.sb.WriteByte('\n')
			w.atLineStart = true
		}
	}
	return nil
}

// Emit writes a nested emittable value.
func (w *CodeWriter) Emit(e ir.Emittable) error {
	return e.EmitTo(w)
}

// Newline terminates the current line.
func (w *CodeWriter) Newline() error {
	return w.WriteLiteral("\n")
}

// Indent increases the indentation level for subsequent lines.
func (w *CodeWriter) Indent() { w.level++ }

// Outdent decreases the indentation level.
func (w *CodeWriter) Outdent() {
	if w.level > 0 {
		w.level--
	}
}

// String returns everything written so far.
func (w *CodeWriter) String() string { return w.sb.String() }

// Bytes returns everything written so far as a byte slice.
func (w *CodeWriter) Bytes() []byte { return []byte(w.sb.String()) }
