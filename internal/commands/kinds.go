package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/okra-platform/sourcegen/internal/filetype"
)

// Kinds lists the generatable file kinds
func (c *Controller) Kinds() error {
	return WriteKinds(c.out(), filetype.Default())
}

// WriteKinds prints one row per kind that has extensions
func WriteKinds(out io.Writer, registry *filetype.Registry) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tLABEL\tEXTENSIONS")
	for _, d := range registry.Descriptors() {
		if len(d.Extensions) == 0 {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Name, d.Label, strings.Join(d.Extensions, " "))
	}
	return tw.Flush()
}
