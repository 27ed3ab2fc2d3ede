// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/pflag"

	"hexamer/internal/clibase"
	"hexamer/internal/cliutil"
	"hexamer/internal/writers"
)

// Options holds all hexamer flags and arguments.
type Options struct {
	clibase.Common

	// Inputs
	Table    string
	SeqFiles []string

	// Scan
	Threshold float64
	NonCoding bool
	SkipBad   bool

	// Performance
	Threads int

	// Output
	Feature  string // defaults to the table file name
	Summary  bool
	Output   string
	Progress bool
}

const (
	name    = "hexamer"
	tagline = "hexamer coding-potential segment scanner"
)

// NewFlagSet returns a clean FlagSet with ContinueOnError.
func NewFlagSet() *pflag.FlagSet { return clibase.NewFlagSet(name) }

// Usage prints the help text for fs.
func Usage(out io.Writer, fs *pflag.FlagSet) {
	clibase.PrintUsage(out, fs, name, tagline,
		"[options] <table> <seqfile>...",
		"[options] <table> -            (read FASTA from stdin)")
}

// PrintExamples prints a short quickstart for hexamer.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Score every reading frame of both strands and report")
		_, _ = fmt.Fprintln(w, "maximal segments as GFF:")
		_, _ = fmt.Fprintln(w, "\n  hexamer -T 20 worm.hex chrI.fa.gz > chrI.hexamer.gff")
		_, _ = fmt.Fprintln(w, "\nPer-sequence totals as JSON lines, 8 workers:")
		_, _ = fmt.Fprintln(w, "\n  hexamer -s -o jsonl -t 8 worm.hex 'contigs/*.fa'")
		_, _ = fmt.Fprintln(w, "\nNon-coding table (no reading frame):")
		_, _ = fmt.Fprintln(w, "\n  hexamer -n -F ncRNA utr.hex est.fa")
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var o Options

	fs.Float64VarP(&o.Threshold, "threshold", "T", 0, "report segments scoring strictly above this")
	fs.StringVarP(&o.Feature, "feature", "F", "", "GFF feature label (default: table file name)")
	fs.BoolVarP(&o.NonCoding, "noncoding", "n", false, "non-coding table: stride 1, no reading frame")
	fs.BoolVarP(&o.Summary, "summary", "s", false, "print one id/length/segment-length row per sequence")
	fs.StringVarP(&o.Output, "output", "o", writers.FormatGFF, "output format: gff | json | jsonl")
	fs.IntVarP(&o.Threads, "threads", "t", 0, "worker threads (0 = all CPUs)")
	fs.BoolVar(&o.SkipBad, "skip-bad", false, "skip sequences with invalid characters instead of aborting")
	fs.BoolVar(&o.Progress, "progress", false, "show a progress spinner on stderr")
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

	pos := fs.Args()
	if len(pos) < 2 {
		return o, errors.New("need a table file and at least one sequence file")
	}
	o.Table = pos[0]
	seqs, err := cliutil.ExpandPositionals(pos[1:])
	if err != nil {
		return o, err
	}
	o.SeqFiles = seqs
	if o.Feature == "" {
		o.Feature = filepath.Base(o.Table)
	}
	return o, Validate(&o)
}

// Validate applies the hexamer option invariants.
func Validate(o *Options) error {
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	switch o.Output {
	case writers.FormatGFF, writers.FormatJSON, writers.FormatJSONL:
	default:
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.Feature == "" {
		return errors.New("--feature must not be empty")
	}
	return nil
}
