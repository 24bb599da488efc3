// Package cpp generates C++ class headers and sources.
package cpp

import (
	"github.com/okra-platform/sourcegen/internal/codegen/docblock"
	"github.com/okra-platform/sourcegen/internal/codegen/guard"
	"github.com/okra-platform/sourcegen/internal/codegen/writer"
	"github.com/okra-platform/sourcegen/internal/genconfig"
)

const (
	// HeaderExtension is the extension of generated headers
	HeaderExtension = ".h"

	// SourceExtension is the extension of generated sources
	SourceExtension = ".cpp"
)

// HeaderFileName returns the file name the source file includes
func HeaderFileName(cfg genconfig.Config) string {
	return cfg.BaseName + HeaderExtension
}

// GenerateHeader returns the header text for cfg with indent markers left in place.
// src provides the random include-guard suffix.
func GenerateHeader(cfg genconfig.Config, src guard.Source) string {
	name := cfg.BaseName
	macro := guard.Name(name, src)

	w := writer.NewWriter()
	w.WriteRaw(docblock.Generate(cfg))

	w.WriteLine("#pragma once")
	w.WriteLinef("#ifndef %s", macro)
	w.WriteLinef("#define %s", macro)
	w.Newline()
	w.Newline()
	w.Newline()

	if cfg.IncludeNamespace {
		w.WriteLinef("namespace %s {", cfg.NamespaceText)
	}

	if cfg.IncludeDocBlock {
		docblock.WriteClass(w, name)
	}

	w.Writef("class %s", name)
	if cfg.IncludeBaseClass {
		w.Writef(" : public %s", cfg.BaseClassText)
	}
	w.WriteLine(" {")
	w.WriteLine("public:")
	w.Indent()
	w.WriteLinef("%s();", name)
	if cfg.IncludeBaseClass {
		w.WriteLinef("virtual ~%s() override;", name)
	} else {
		w.WriteLinef("virtual ~%s() ;", name)
	}
	w.Dedent()
	w.WriteLine("};")
	w.Newline()

	if cfg.IncludeNamespace {
		w.WriteLinef("}//ns %s", cfg.NamespaceText)
	}
	w.Newline()
	w.WriteLine("#endif")

	return w.String()
}

// GenerateSource returns the source text for cfg: the header include and
// empty constructor and destructor bodies.
func GenerateSource(cfg genconfig.Config) string {
	name := cfg.BaseName

	w := writer.NewWriter()
	w.WriteLinef("#include \"./%s\"", HeaderFileName(cfg))
	w.Newline()
	w.Newline()

	if cfg.IncludeNamespace {
		w.WriteLinef("namespace %s {", cfg.NamespaceText)
	}

	w.WriteBlock(name+"::"+name+"() {", "}", func() {
		w.Newline()
	})
	w.WriteBlock(name+"::~"+name+"() {", "}", func() {
		w.Newline()
	})
	w.Newline()

	if cfg.IncludeNamespace {
		w.WriteLinef("}//ns %s", cfg.NamespaceText)
	}

	return w.String()
}

// HeaderGenerator produces ".h" files
type HeaderGenerator struct {
	guards guard.Source
}

// NewHeaderGenerator creates a header generator drawing guard digits from src
func NewHeaderGenerator(src guard.Source) *HeaderGenerator {
	if src == nil {
		src = guard.NewSource(0)
	}
	return &HeaderGenerator{guards: src}
}

// Language returns the name of the target language
func (g *HeaderGenerator) Language() string {
	return "c++"
}

// FileExtension returns the file extension for generated files
func (g *HeaderGenerator) FileExtension() string {
	return HeaderExtension
}

// Generate returns the header text, indent markers included
func (g *HeaderGenerator) Generate(cfg genconfig.Config) ([]byte, error) {
	return []byte(GenerateHeader(cfg, g.guards)), nil
}

// SourceGenerator produces ".cpp" files
type SourceGenerator struct{}

// NewSourceGenerator creates a source generator
func NewSourceGenerator() *SourceGenerator {
	return &SourceGenerator{}
}

// Language returns the name of the target language
func (g *SourceGenerator) Language() string {
	return "c++"
}

// FileExtension returns the file extension for generated files
func (g *SourceGenerator) FileExtension() string {
	return SourceExtension
}

// Generate returns the source text, indent markers included
func (g *SourceGenerator) Generate(cfg genconfig.Config) ([]byte, error) {
	return []byte(GenerateSource(cfg)), nil
}
