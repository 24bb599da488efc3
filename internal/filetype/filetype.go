// Package filetype maps output kinds to file extensions and display labels.
package filetype

import (
	"fmt"
	"strings"
)

// Kind identifies the category of file(s) produced for a request
type Kind int

// Kinds in registry order. The order is significant: KindForExtension returns
// the first registered kind that owns an extension, so CppClass must stay
// ahead of CppHeader and CppSource.
const (
	None Kind = iota
	Java
	CppClass
	CppHeader
	CppSource
)

// Descriptor describes one registered kind
type Descriptor struct {
	Kind  Kind
	Name  string
	Label string
	// Extensions lists the extensions the kind produces, in output order
	Extensions []string
}

// String returns the machine name of the kind (e.g. "cpp-class")
func (k Kind) String() string {
	if d, ok := defaultRegistry.descriptor(k); ok {
		return d.Name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Label returns the human readable label of the kind
func (k Kind) Label() string {
	return LabelFor(k)
}

// MarshalText encodes the kind by name so settings files stay readable
func (k Kind) MarshalText() ([]byte, error) {
	d, ok := defaultRegistry.descriptor(k)
	if !ok {
		return nil, fmt.Errorf("unknown kind: %d", int(k))
	}
	return []byte(d.Name), nil
}

// UnmarshalText decodes a kind from its name or label
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind resolves a kind from its name or label, ignoring case
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for _, d := range defaultRegistry.entries {
		if strings.EqualFold(s, d.Name) || strings.EqualFold(s, d.Label) {
			return d.Kind, nil
		}
	}
	return None, fmt.Errorf("unknown kind: %q", s)
}

// NormalizeExtension lower-cases and trims ext and makes sure it starts with a dot.
// An empty input stays empty.
func NormalizeExtension(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
