package filetype

// Registry is an ordered, read-only table of kind descriptors
type Registry struct {
	entries []Descriptor
}

// defaultRegistry is built once at startup and never modified afterwards
var defaultRegistry = NewRegistry(
	Descriptor{Kind: None, Name: "none", Label: "None"},
	Descriptor{Kind: Java, Name: "java", Label: "Java", Extensions: []string{".java"}},
	Descriptor{Kind: CppClass, Name: "cpp-class", Label: "C++ Class", Extensions: []string{".h", ".cpp"}},
	Descriptor{Kind: CppHeader, Name: "cpp-header", Label: "C++ Header", Extensions: []string{".h"}},
	Descriptor{Kind: CppSource, Name: "cpp-source", Label: "C++ Source", Extensions: []string{".cpp"}},
)

// NewRegistry creates a registry from descriptors. Lookup order follows the
// argument order.
func NewRegistry(descriptors ...Descriptor) *Registry {
	entries := make([]Descriptor, 0, len(descriptors))
	for _, d := range descriptors {
		exts := make([]string, 0, len(d.Extensions))
		for _, ext := range d.Extensions {
			if n := NormalizeExtension(ext); n != "" {
				exts = append(exts, n)
			}
		}
		d.Extensions = exts
		entries = append(entries, d)
	}
	return &Registry{entries: entries}
}

// Default returns the process-wide registry
func Default() *Registry {
	return defaultRegistry
}

func (r *Registry) descriptor(kind Kind) (Descriptor, bool) {
	for _, d := range r.entries {
		if d.Kind == kind {
			return d, true
		}
	}
	return Descriptor{}, false
}

// ExtensionsFor returns the ordered extensions of kind. The result is a copy
// and is empty for None and for unregistered kinds.
func (r *Registry) ExtensionsFor(kind Kind) []string {
	d, ok := r.descriptor(kind)
	if !ok {
		return []string{}
	}
	out := make([]string, len(d.Extensions))
	copy(out, d.Extensions)
	return out
}

// KindForExtension returns the first registered kind whose extensions contain
// ext. With uniqueOnly set, kinds spanning several extensions are skipped, so
// ".cpp" resolves to CppSource instead of CppClass. None is returned when
// nothing matches.
func (r *Registry) KindForExtension(ext string, uniqueOnly bool) Kind {
	ext = NormalizeExtension(ext)
	if ext == "" {
		return None
	}
	for _, d := range r.entries {
		if uniqueOnly && len(d.Extensions) != 1 {
			continue
		}
		for _, candidate := range d.Extensions {
			if candidate == ext {
				return d.Kind
			}
		}
	}
	return None
}

// LabelFor returns the display label of kind
func (r *Registry) LabelFor(kind Kind) string {
	if d, ok := r.descriptor(kind); ok {
		return d.Label
	}
	return "Unknown"
}

// Descriptors returns a copy of every registered descriptor in order
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.entries))
	for _, d := range r.entries {
		d.Extensions = append([]string(nil), d.Extensions...)
		out = append(out, d)
	}
	return out
}

// Kinds returns the kinds that produce at least one file
func (r *Registry) Kinds() []Kind {
	var kinds []Kind
	for _, d := range r.entries {
		if len(d.Extensions) > 0 {
			kinds = append(kinds, d.Kind)
		}
	}
	return kinds
}

// ExtensionsFor returns the extensions of kind from the default registry
func ExtensionsFor(kind Kind) []string {
	return defaultRegistry.ExtensionsFor(kind)
}

// KindForExtension resolves ext against the default registry
func KindForExtension(ext string, uniqueOnly bool) Kind {
	return defaultRegistry.KindForExtension(ext, uniqueOnly)
}

// LabelFor returns the label of kind from the default registry
func LabelFor(kind Kind) string {
	return defaultRegistry.LabelFor(kind)
}

// Kinds returns the generatable kinds of the default registry
func Kinds() []Kind {
	return defaultRegistry.Kinds()
}
