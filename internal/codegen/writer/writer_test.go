package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriter_BasicWriting(t *testing.T) {
	// Test: Basic write operations
	w := NewWriter()

	w.Write("hello")
	w.Write(" world")

	assert.Equal(t, "hello world", w.String())
}

func TestWriter_WriteLine(t *testing.T) {
	// Test: WriteLine adds newline
	w := NewWriter()

	w.WriteLine("line1")
	w.WriteLine("line2")

	assert.Equal(t, "line1\nline2\n", w.String())
}

func TestWriter_IndentationUsesMarkers(t *testing.T) {
	// Test: Indentation is emitted as markers, not whitespace
	w := NewWriter()

	w.WriteBlock("class Foo {", "};", func() {
		w.WriteLine("Foo();")
		w.Indent()
		w.WriteLine("deeper();")
		w.Dedent()
	})

	assert.Equal(t, "class Foo {\n$Foo();\n$$deeper();\n};\n", w.String())
}

func TestWriter_EmptyLineHasNoMarker(t *testing.T) {
	// Test: Blank lines inside a block stay blank
	w := NewWriter()

	w.WriteBlock("{", "}", func() {
		w.WriteLine("")
	})

	assert.Equal(t, "{\n\n}\n", w.String())
}

func TestWriter_CommentHelpers(t *testing.T) {
	// Test: Comment helpers place the marker after the leading star
	w := NewWriter()

	w.OpenComment()
	w.WriteCommentLine()
	w.WriteTag("file", "Foo.h")
	w.WriteTag("brief", "")
	w.WriteCommentText("line one  \r\nline two\n\n")
	w.CloseComment()

	expected := "/**\n*\n*$@file Foo.h\n*$@brief\n*$line one\n*$line two\n*/\n"
	assert.Equal(t, expected, w.String())
}

func TestWriter_WriteCommentTextEmpty(t *testing.T) {
	// Test: Empty comment text produces no output
	w := NewWriter()

	w.WriteCommentText("\n")

	assert.Equal(t, "", w.String())
}

func TestWriter_WriteRaw(t *testing.T) {
	// Test: Raw text is appended verbatim and keeps line state
	w := NewWriter()
	w.Indent()

	w.WriteRaw("/**\n*/\n")
	w.WriteLine("x")
	w.WriteRaw("")

	assert.Equal(t, "/**\n*/\n$x\n", w.String())
}

func TestWriter_WriteFormatted(t *testing.T) {
	// Test: Formatted write operations
	w := NewWriter()

	w.WriteLinef("namespace %s {", "NS")
	w.Indent()
	w.Writef("%s();", "Foo")
	w.Newline()

	assert.Equal(t, "namespace NS {\n$Foo();\n", w.String())
}

func TestWriter_Reset(t *testing.T) {
	// Test: Reset clears writer state
	w := NewWriter()

	w.WriteLine("some content")
	w.Indent()
	w.Indent()
	assert.Equal(t, 2, w.IndentLevel())

	w.Reset()

	assert.Equal(t, "", w.String())
	assert.Equal(t, 0, w.IndentLevel())

	w.WriteLine("new content")
	assert.Equal(t, "new content\n", w.String())
}

func TestWriter_Bytes(t *testing.T) {
	w := NewWriter()
	w.Write("hello")
	assert.Equal(t, []byte("hello"), w.Bytes())
}

func TestWriter_IndentDedentBounds(t *testing.T) {
	// Test: Dedent doesn't go below zero
	w := NewWriter()

	w.Dedent()
	assert.Equal(t, 0, w.IndentLevel())

	w.Indent()
	assert.Equal(t, 1, w.IndentLevel())
	w.Dedent()
	assert.Equal(t, 0, w.IndentLevel())
}
