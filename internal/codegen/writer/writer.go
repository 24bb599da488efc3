package writer

import (
	"fmt"
	"strings"
)

// IndentMarker is the placeholder emitted for one level of indentation.
// Generated text keeps the markers until the indent step substitutes them.
const IndentMarker = "$"

// Writer builds generated source text line by line. Indentation is written as
// IndentMarker runs, never as literal whitespace.
type Writer struct {
	sb          strings.Builder
	indentLevel int
	linePrefix  string
	needsIndent bool
}

// NewWriter creates a new writer
func NewWriter() *Writer {
	return &Writer{
		needsIndent: true,
	}
}

// Indent increases the indentation level
func (w *Writer) Indent() {
	w.indentLevel++
	w.updatePrefix()
}

// Dedent decreases the indentation level
func (w *Writer) Dedent() {
	if w.indentLevel > 0 {
		w.indentLevel--
		w.updatePrefix()
	}
}

// Write writes a string without adding a newline
func (w *Writer) Write(s string) {
	if w.needsIndent && s != "" {
		w.sb.WriteString(w.linePrefix)
		w.needsIndent = false
	}
	w.sb.WriteString(s)
}

// Writef writes a formatted string without adding a newline
func (w *Writer) Writef(format string, args ...interface{}) {
	w.Write(fmt.Sprintf(format, args...))
}

// WriteLine writes a string and adds a newline
func (w *Writer) WriteLine(s string) {
	w.Write(s)
	w.Newline()
}

// WriteLinef writes a formatted string and adds a newline
func (w *Writer) WriteLinef(format string, args ...interface{}) {
	w.Writef(format, args...)
	w.Newline()
}

// Newline adds a newline character
func (w *Writer) Newline() {
	w.sb.WriteString("\n")
	w.needsIndent = true
}

// WriteRaw appends s untouched, without indentation handling
func (w *Writer) WriteRaw(s string) {
	if s == "" {
		return
	}
	w.sb.WriteString(s)
	w.needsIndent = strings.HasSuffix(s, "\n")
}

// IndentLevel returns the current indentation level
func (w *Writer) IndentLevel() int {
	return w.indentLevel
}

// String returns the generated text
func (w *Writer) String() string {
	return w.sb.String()
}

// Bytes returns the generated text as a byte slice
func (w *Writer) Bytes() []byte {
	return []byte(w.sb.String())
}

// Reset clears the writer's content and resets indentation
func (w *Writer) Reset() {
	w.sb.Reset()
	w.indentLevel = 0
	w.linePrefix = ""
	w.needsIndent = true
}

func (w *Writer) updatePrefix() {
	w.linePrefix = strings.Repeat(IndentMarker, w.indentLevel)
}

// WriteBlock writes content between opener and closer, one level deeper
func (w *Writer) WriteBlock(opener, closer string, content func()) {
	w.WriteLine(opener)
	w.Indent()
	content()
	w.Dedent()
	w.WriteLine(closer)
}

// OpenComment starts a /** comment block
func (w *Writer) OpenComment() {
	w.WriteLine("/**")
}

// CloseComment ends a comment block
func (w *Writer) CloseComment() {
	w.WriteLine("*/")
}

// WriteCommentLine writes an empty "*" line inside a comment block
func (w *Writer) WriteCommentLine() {
	w.WriteLine("*")
}

// WriteTag writes a "*<marker>@tag value" line. An empty value writes the tag alone.
func (w *Writer) WriteTag(tag, value string) {
	if value == "" {
		w.WriteLinef("*%s@%s", IndentMarker, tag)
		return
	}
	w.WriteLinef("*%s@%s %s", IndentMarker, tag, value)
}

// WriteCommentText writes every line of text as "*<marker>line"
func (w *Writer) WriteCommentText(text string) {
	text = strings.TrimRight(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		w.WriteLinef("*%s%s", IndentMarker, strings.TrimRight(line, " \t"))
	}
}
