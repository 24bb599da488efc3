package codegen

import (
	"fmt"

	"github.com/okra-platform/sourcegen/internal/codegen/cpp"
	"github.com/okra-platform/sourcegen/internal/codegen/docblock"
	"github.com/okra-platform/sourcegen/internal/codegen/guard"
	"github.com/okra-platform/sourcegen/internal/codegen/java"
	"github.com/okra-platform/sourcegen/internal/filetype"
	"github.com/okra-platform/sourcegen/internal/genconfig"
)

// GuardSource supplies random digits for C++ include guards
type GuardSource = guard.Source

// Generate produces every file required by cfg using the default registry
func Generate(cfg genconfig.Config, opts Options) ([]File, error) {
	return DefaultRegistry.Generate(cfg, opts)
}

// Generate produces every file required by cfg.Kind, in extension order, with
// indentation applied. A kind spanning several extensions is split into the
// single-extension kinds that own each extension.
func (r *Registry) Generate(cfg genconfig.Config, opts Options) ([]File, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	exts := filetype.ExtensionsFor(cfg.Kind)
	if len(exts) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, cfg.Kind)
	}

	if opts.Guards == nil {
		opts.Guards = guard.NewSource(0)
	}

	files := make([]File, 0, len(exts))
	for _, ext := range exts {
		kind := filetype.KindForExtension(ext, true)
		gen, err := r.Get(kind, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve generator for %s: %w", ext, err)
		}

		fileCfg := cfg
		fileCfg.Kind = kind
		text, err := gen.Generate(fileCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s%s: %w", cfg.BaseName, ext, err)
		}

		indented, err := ApplyIndent(string(text), cfg)
		if err != nil {
			return nil, err
		}

		files = append(files, File{
			Name:      cfg.BaseName + ext,
			Extension: ext,
			Content:   []byte(indented),
		})
	}

	return files, nil
}

// GenerateDocBlock returns the file doc block for cfg, or "" when disabled
func GenerateDocBlock(cfg genconfig.Config) string {
	return docblock.Generate(cfg)
}

// GenerateCppHeader returns the C++ header text with indent markers in place
func GenerateCppHeader(cfg genconfig.Config, src GuardSource) string {
	return cpp.GenerateHeader(cfg, src)
}

// GenerateCppSource returns the C++ source text with indent markers in place
func GenerateCppSource(cfg genconfig.Config) string {
	return cpp.GenerateSource(cfg)
}

// GenerateJavaSource returns the Java class text with indent markers in place
func GenerateJavaSource(cfg genconfig.Config) string {
	return java.Generate(cfg)
}
