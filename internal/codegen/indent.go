package codegen

import (
	"strings"

	"github.com/okra-platform/sourcegen/internal/codegen/writer"
	"github.com/okra-platform/sourcegen/internal/genconfig"
)

// ApplyIndent replaces every indent marker in text with cfg.IndentWidth tabs
// or spaces. Every "$" is substituted, including ones that came from user
// text such as a namespace. Re-applying is a no-op because the substituted
// whitespace never contains the marker.
func ApplyIndent(text string, cfg genconfig.Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	unit := " "
	if cfg.UseTabs {
		unit = "\t"
	}

	return strings.ReplaceAll(text, writer.IndentMarker, strings.Repeat(unit, cfg.IndentWidth)), nil
}
