// Package docblock renders the comment blocks placed at the top of generated files.
package docblock

import (
	"github.com/okra-platform/sourcegen/internal/codegen/writer"
	"github.com/okra-platform/sourcegen/internal/filetype"
	"github.com/okra-platform/sourcegen/internal/genconfig"
)

// FileName returns the name shown on the @file line: the base name plus the
// first extension of the configured kind.
func FileName(cfg genconfig.Config) string {
	exts := filetype.ExtensionsFor(cfg.Kind)
	if len(exts) == 0 {
		return cfg.BaseName
	}
	return cfg.BaseName + exts[0]
}

// Generate returns the file doc block, or "" when the doc block is disabled.
// Lines appear in the order file, date, author, copyright, license.
func Generate(cfg genconfig.Config) string {
	if !cfg.IncludeDocBlock {
		return ""
	}

	w := writer.NewWriter()
	w.OpenComment()
	w.WriteCommentLine()
	w.WriteTag("file", FileName(cfg))
	if cfg.DocDate() {
		w.WriteTag("date", cfg.CurrentDate)
	}
	if cfg.DocAuthor() {
		w.WriteTag("author", cfg.AuthorText)
	}
	if cfg.DocCopyright() {
		w.WriteTag("Copyright", cfg.Year()+" "+cfg.CopyrightText)
	}
	w.WriteCommentLine()
	if cfg.DocLicense() && cfg.LicenseText != "" {
		w.WriteCommentText(cfg.LicenseText)
		w.WriteCommentLine()
	}
	w.CloseComment()

	return w.String()
}

// WriteClass writes the class level doc block for className
func WriteClass(w *writer.Writer, className string) {
	w.OpenComment()
	w.WriteTag("class", className)
	w.WriteTag("brief", "")
	w.WriteCommentLine()
	w.CloseComment()
}
