// Package java generates Java class files.
package java

import (
	"github.com/okra-platform/sourcegen/internal/codegen/docblock"
	"github.com/okra-platform/sourcegen/internal/codegen/writer"
	"github.com/okra-platform/sourcegen/internal/genconfig"
)

// FileExtension is the extension of generated Java files
const FileExtension = ".java"

// Generate returns the Java class text for cfg with indent markers left in place
func Generate(cfg genconfig.Config) string {
	name := cfg.BaseName

	w := writer.NewWriter()
	if doc := docblock.Generate(cfg); doc != "" {
		w.WriteRaw(doc)
		w.Newline()
	}

	if cfg.IncludeNamespace {
		w.WriteLinef("package %s;", cfg.NamespaceText)
	}

	if cfg.IncludeDocBlock {
		w.WriteLine("//import")
		w.Newline()
		docblock.WriteClass(w, name)
	}

	w.Writef("public class %s", name)
	if cfg.IncludeBaseClass {
		// two spaces before the brace when extending
		w.Writef(" extends %s ", cfg.BaseClassText)
	}
	w.WriteBlock(" {", "}", func() {
		w.Newline()
	})

	return w.String()
}

// Generator produces ".java" files
type Generator struct{}

// NewGenerator creates a Java generator
func NewGenerator() *Generator {
	return &Generator{}
}

// Language returns the name of the target language
func (g *Generator) Language() string {
	return "java"
}

// FileExtension returns the file extension for generated files
func (g *Generator) FileExtension() string {
	return FileExtension
}

// Generate returns the class text, indent markers included
func (g *Generator) Generate(cfg genconfig.Config) ([]byte, error) {
	return []byte(Generate(cfg)), nil
}
