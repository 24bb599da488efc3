// Package genconfig holds the immutable snapshot of options a generation run uses.
package genconfig

import (
	"fmt"
	"time"

	"github.com/okra-platform/sourcegen/internal/filetype"
)

// DateLayout is the layout used for the @date line (MM/dd/yyyy)
const DateLayout = "01/02/2006"

// Config contains every input of a template generation call.
// Text fields are only used when their Include flag is set.
type Config struct {
	// Kind is the output kind to generate
	Kind filetype.Kind

	// BaseName is the class and file name without extension
	BaseName string

	IncludeDocBlock  bool
	IncludeDate      bool
	IncludeAuthor    bool
	IncludeCopyright bool
	IncludeLicense   bool

	AuthorText    string
	CopyrightText string
	LicenseText   string

	// NamespaceText is the C++ namespace or the Java package
	IncludeNamespace bool
	NamespaceText    string

	IncludeBaseClass bool
	BaseClassText    string

	// UseTabs selects tab characters instead of spaces for each indent marker
	UseTabs bool

	// IndentWidth is the number of tab or space characters per indent marker
	IndentWidth int

	// CurrentDate is supplied by the caller so output stays deterministic
	CurrentDate string
}

// Validate reports malformed numeric fields
func (c Config) Validate() error {
	if c.IndentWidth < 0 {
		return fmt.Errorf("%w: indent width must not be negative, got %d", ErrInvalidConfig, c.IndentWidth)
	}
	return nil
}

// DocDate reports whether the doc block carries a @date line
func (c Config) DocDate() bool { return c.IncludeDocBlock && c.IncludeDate }

// DocAuthor reports whether the doc block carries an @author line
func (c Config) DocAuthor() bool { return c.IncludeDocBlock && c.IncludeAuthor }

// DocCopyright reports whether the doc block carries a @Copyright line
func (c Config) DocCopyright() bool { return c.IncludeDocBlock && c.IncludeCopyright }

// DocLicense reports whether the doc block carries the license text
func (c Config) DocLicense() bool { return c.IncludeDocBlock && c.IncludeLicense }

// Year returns the copyright year taken from CurrentDate: the first run of
// exactly four digits, or the whole CurrentDate when there is none.
func (c Config) Year() string {
	run := 0
	for i := 0; i <= len(c.CurrentDate); i++ {
		if i < len(c.CurrentDate) && c.CurrentDate[i] >= '0' && c.CurrentDate[i] <= '9' {
			run++
			continue
		}
		if run == 4 {
			return c.CurrentDate[i-4 : i]
		}
		run = 0
	}
	return c.CurrentDate
}

// FormatDate renders t with DateLayout
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
