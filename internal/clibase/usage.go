// internal/clibase/usage.go
package clibase

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"hexamer/internal/version"
)

// PrintUsage writes the shared help layout to out: a header, the tool's
// usage lines, then the flag table rendered by pflag.
func PrintUsage(out io.Writer, fs *pflag.FlagSet, name, tagline string, lines ...string) {
	_, _ = fmt.Fprintf(out, "%s – %s\n\n", name, tagline)
	_, _ = fmt.Fprintln(out, "License: MIT")
	_, _ = fmt.Fprintf(out, "Version: %s\n\n", version.Version)
	_, _ = fmt.Fprintln(out, "Usage:")
	for _, l := range lines {
		_, _ = fmt.Fprintf(out, "  %s %s\n", name, l)
	}
	_, _ = fmt.Fprintln(out, "\nOptions:")
	_, _ = fmt.Fprint(out, fs.FlagUsages())
}
