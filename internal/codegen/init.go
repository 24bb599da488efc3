package codegen

import (
	"github.com/okra-platform/sourcegen/internal/codegen/cpp"
	"github.com/okra-platform/sourcegen/internal/codegen/java"
	"github.com/okra-platform/sourcegen/internal/filetype"
)

// DefaultRegistry is the global registry instance with pre-registered generators.
// Multi-extension kinds such as CppClass are not registered; Generate expands
// them through their extensions.
var DefaultRegistry = NewRegistry()

func init() {
	DefaultRegistry.Register(filetype.Java, func(opts Options) Generator {
		return java.NewGenerator()
	})

	DefaultRegistry.Register(filetype.CppHeader, func(opts Options) Generator {
		return cpp.NewHeaderGenerator(opts.Guards)
	})

	DefaultRegistry.Register(filetype.CppSource, func(opts Options) Generator {
		return cpp.NewSourceGenerator()
	})
}
