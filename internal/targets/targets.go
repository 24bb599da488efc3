// Package targets turns a free-form line of file names into output targets.
package targets

import (
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/okra-platform/sourcegen/internal/filetype"
)

// Target is one requested output
type Target struct {
	// Path is the requested path, including any default directory
	Path string

	// BaseName is the file name without directory or extension
	BaseName string

	// Kind is resolved from the extension; None when it is not recognised
	Kind filetype.Kind
}

// Dir returns the directory the target's files are written to
func (t Target) Dir() string {
	return filepath.Dir(t.Path)
}

// OutputPath returns the path of the file with extension ext
func (t Target) OutputPath(ext string) string {
	return filepath.Join(t.Dir(), t.BaseName+ext)
}

// WithKind returns a copy of t generating kind instead
func (t Target) WithKind(kind filetype.Kind) Target {
	t.Kind = kind
	return t
}

// Parse splits line into file names. Double-quoted names may contain spaces;
// commas and quotes are stripped and empty names dropped.
func Parse(line string) []string {
	args, err := shellquote.Split(line)
	if err != nil {
		// Unbalanced quotes: fall back to a plain split
		args = strings.Fields(line)
	}

	names := make([]string, 0, len(args))
	for _, arg := range args {
		name := strings.ReplaceAll(arg, ",", "")
		name = strings.ReplaceAll(name, `"`, "")
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Resolve builds targets from names. Names without a directory are placed in
// defaultDir; names that carry a directory are used as given.
func Resolve(names []string, defaultDir string) []Target {
	targets := make([]Target, 0, len(names))
	for _, name := range names {
		path := name
		if filepath.Dir(name) == "." && !strings.HasPrefix(name, "."+string(filepath.Separator)) {
			path = filepath.Join(defaultDir, name)
		}

		base := filepath.Base(name)
		ext := filepath.Ext(base)
		targets = append(targets, Target{
			Path:     path,
			BaseName: strings.TrimSuffix(base, ext),
			Kind:     filetype.KindForExtension(ext, true),
		})
	}
	return targets
}

// ParseAndResolve is Parse followed by Resolve
func ParseAndResolve(line, defaultDir string) []Target {
	return Resolve(Parse(line), defaultDir)
}
