// internal/clibase/common.go
package clibase

import (
	"github.com/spf13/pflag"
)

// Common holds CLI fields shared by hexamer and hextable.
type Common struct {
	Quiet    bool
	Version  bool
	Help     bool
	Examples bool
}

// NewFlagSet returns a ContinueOnError pflag set that keeps registration
// order in help output and lets the caller own usage printing.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {}
	return fs
}

// Register wires the shared flags onto fs.
func Register(fs *pflag.FlagSet, c *Common) {
	fs.BoolVarP(&c.Quiet, "quiet", "q", false, "suppress warnings and the closing summary")
	fs.BoolVarP(&c.Version, "version", "v", false, "print version and exit")
	fs.BoolVar(&c.Examples, "examples", false, "show quickstart examples and exit")
	fs.BoolVarP(&c.Help, "help", "h", false, "show this help and exit")
}

// Finish reports help and examples requests as sentinel errors, so apps
// can print and exit 0 before validation runs.
func Finish(c *Common) error {
	switch {
	case c.Help:
		return pflag.ErrHelp
	case c.Examples:
		return ErrPrintedAndExitOK
	}
	return nil
}
