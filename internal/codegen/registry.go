package codegen

import (
	"fmt"
	"sort"

	"github.com/okra-platform/sourcegen/internal/filetype"
)

// Factory builds a generator for one generation run
type Factory func(opts Options) Generator

// Registry manages the generators available per single-extension kind
type Registry struct {
	generators map[filetype.Kind]Factory
}

// NewRegistry creates a new generator registry
func NewRegistry() *Registry {
	return &Registry{
		generators: make(map[filetype.Kind]Factory),
	}
}

// Register adds a generator factory for kind
func (r *Registry) Register(kind filetype.Kind, factory Factory) {
	r.generators[kind] = factory
}

// Get returns a generator for kind
func (r *Registry) Get(kind filetype.Kind, opts Options) (Generator, error) {
	factory, exists := r.generators[kind]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}

	return factory(opts), nil
}

// Kinds returns the registered kinds in registry order
func (r *Registry) Kinds() []filetype.Kind {
	kinds := make([]filetype.Kind, 0, len(r.generators))
	for kind := range r.generators {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
