package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Languages lists the registered profiles with their extensions. With
// verbose set it also lists each profile's categories in matching order.
func Languages(config *Config, verbose bool, out io.Writer) error {
	reg, err := NewRegistry(config.ProfileDir)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tEXTENSIONS\tRULES")
	for _, p := range reg.Profiles() {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", p.Name(), strings.Join(p.Extensions(), " "), len(p.Rules()))
		if verbose {
			for _, r := range p.Rules() {
				fmt.Fprintf(tw, "\t  %s\tgroup %d: %s\n", r.Category(), r.Group(), r.Pattern())
			}
		}
	}
	return tw.Flush()
}
