// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"hexamer/internal/appcore"
	"hexamer/internal/cli"
	"hexamer/internal/clibase"
	"hexamer/internal/hextable"
	"hexamer/internal/version"
	"hexamer/internal/writers"
)

// flush maps a final stdout flush to an exit code.
func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}

// RunContext is the hexamer entry point. It parses argv, loads the table
// and scans every sequence file, returning the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet()
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		cli.Usage(outw, fs)
		return flush(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, pflag.ErrHelp):
			cli.Usage(outw, fs)
			return flush(outw, stderr, 0)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw)
			return flush(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		cli.Usage(outw, fs)
		return flush(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "hexamer version %s\n", version.Version)
		return flush(outw, stderr, 0)
	}

	tab, err := hextable.ReadFile(opts.Table)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "failed to open table file: %v\n", err)
		return 2
	}

	coreOpts := appcore.Options{
		SeqFiles:  opts.SeqFiles,
		Threshold: opts.Threshold,
		NonCoding: opts.NonCoding,
		SkipBad:   opts.SkipBad,
		Threads:   opts.Threads,
		Quiet:     opts.Quiet,
		Progress:  opts.Progress,
	}
	writer := appcore.NewResultWriterFactory(opts.Output, opts.Feature, opts.Summary)
	return appcore.Run(parent, stdout, stderr, coreOpts, tab, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
