package codegen

import "github.com/okra-platform/sourcegen/internal/genconfig"

// Generator is the interface that all kind-specific generators must implement
type Generator interface {
	// Generate returns the file text for cfg with indent markers still in place
	Generate(cfg genconfig.Config) ([]byte, error)

	// Language returns the name of the target language (e.g. "c++", "java")
	Language() string

	// FileExtension returns the extension of the produced file (e.g. ".h")
	FileExtension() string
}

// File is one generated output file
type File struct {
	// Name is the base name plus extension (e.g. "Foo.h")
	Name string

	// Extension is the registered extension the file was generated for
	Extension string

	// Content is the final text with indentation applied
	Content []byte
}

// Options contains inputs that are not part of the generation config
type Options struct {
	// Guards supplies include-guard digits; nil uses a randomly seeded source
	Guards GuardSource
}
