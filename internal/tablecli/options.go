// internal/tablecli/options.go
package tablecli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"hexamer/internal/clibase"
)

// Options holds all hextable flags and arguments.
type Options struct {
	clibase.Common

	Training   string // positional
	Background string // -2; empty selects the composition method
	Evaluate   string // held-out set; empty = training set
	Out        string // table path; empty = no table written
	NonCoding  bool
	Top        int
}

const (
	name    = "hextable"
	tagline = "build hexamer score tables from training sequences"
)

// NewFlagSet returns a clean FlagSet with ContinueOnError.
func NewFlagSet() *pflag.FlagSet { return clibase.NewFlagSet(name) }

// Usage prints the help text for fs.
func Usage(out io.Writer, fs *pflag.FlagSet) {
	clibase.PrintUsage(out, fs, name, tagline,
		"[options] <training.fa>",
		"-o coding.hex -2 background.fa -s heldout.fa <training.fa>")
}

// PrintExamples prints a short quickstart for hextable.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Composition table from coding sequences (ATG...stop):")
		_, _ = fmt.Fprintln(w, "\n  hextable -o worm.hex cds.fa")
		_, _ = fmt.Fprintln(w, "\nLikelihood-ratio table against introns, evaluated on held-out genes:")
		_, _ = fmt.Fprintln(w, "\n  hextable -o worm.hex -2 introns.fa -s test_cds.fa cds.fa")
		_, _ = fmt.Fprintln(w, "\nShow the 20 best-scoring hexamers without writing a table:")
		_, _ = fmt.Fprintln(w, "\n  hextable --top 20 cds.fa")
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var o Options

	fs.StringVarP(&o.Out, "out", "o", "", "write the table to this file")
	fs.StringVarP(&o.Background, "background", "2", "", "background FASTA; selects the likelihood-ratio method")
	fs.StringVarP(&o.Evaluate, "evaluate", "s", "", "held-out FASTA to evaluate (default: the training set)")
	fs.BoolVarP(&o.NonCoding, "noncoding", "n", false, "non-coding table: stride 1 training, no stop rule")
	fs.IntVar(&o.Top, "top", 0, "print the N best-scoring hexamers")
	clibase.Register(fs, &o.Common)

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if err := clibase.Finish(&o.Common); err != nil {
		return o, err
	}
	if o.Version {
		return o, nil
	}

	switch pos := fs.Args(); len(pos) {
	case 1:
		o.Training = pos[0]
	case 0:
		return o, errors.New("need a training FASTA file")
	default:
		return o, fmt.Errorf("expected one training file, got %d", len(pos))
	}
	return o, Validate(&o)
}

// Validate applies the hextable option invariants.
func Validate(o *Options) error {
	if o.Top < 0 {
		return errors.New("--top must be ≥ 0")
	}
	stdin := 0
	for _, p := range []string{o.Training, o.Background, o.Evaluate} {
		if p == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return errors.New("stdin ('-') can feed only one input")
	}
	return nil
}
