// internal/tableapp/app.go
package tableapp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"hexamer/internal/alphabet"
	"hexamer/internal/clibase"
	"hexamer/internal/cmdutil"
	"hexamer/internal/fasta"
	"hexamer/internal/hextable"
	"hexamer/internal/tablecli"
	"hexamer/internal/version"
	"hexamer/internal/writers"
)

func flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}

// RunContext is the hextable entry point.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := tablecli.NewFlagSet()
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = tablecli.ParseArgs(fs, []string{"-h"})
		tablecli.Usage(outw, fs)
		return flush(outw, stderr, 0)
	}

	opts, err := tablecli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, pflag.ErrHelp):
			tablecli.Usage(outw, fs)
			return flush(outw, stderr, 0)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			tablecli.PrintExamples(outw)
			return flush(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		tablecli.Usage(outw, fs)
		return flush(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "hextable version %s\n", version.Version)
		return flush(outw, stderr, 0)
	}

	err = build(parent, outw, stderr, opts)
	code := 0
	switch {
	case errors.Is(err, context.Canceled):
		code = 130
	case err != nil:
		_, _ = fmt.Fprintf(stderr, "FATAL ERROR: %v\n", err)
		code = 3
	}
	return flush(outw, stderr, code)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// trainingSet reads path with the strict codec; N and any other
// non-ACGT letter in training data is fatal.
func trainingSet(ctx context.Context, path string) ([][]byte, error) {
	recs, err := fasta.ReadAllPath(ctx, path, alphabet.Strict)
	if err != nil {
		return nil, err
	}
	seqs := make([][]byte, len(recs))
	for i, r := range recs {
		seqs[i] = r.Seq
	}
	return seqs, nil
}

func count(seqs [][]byte, stride int) *hextable.Counts {
	c := hextable.NewCounts()
	for _, s := range seqs {
		c.Add(s, stride)
	}
	return c
}

func build(ctx context.Context, out, stderr io.Writer, o tablecli.Options) error {
	stride := 3
	if o.NonCoding {
		stride = 1
	}

	train, err := trainingSet(ctx, o.Training)
	if err != nil {
		return err
	}
	fg := count(train, stride)
	cmdutil.Infof(stderr, o.Quiet, "training: %s sequences, %s hexamers",
		humanize.Comma(int64(len(train))), humanize.Comma(int64(fg.Observed())))

	_, _ = fmt.Fprintf(out, "%.3f bits per base in 3mers\n", hextable.Information(fg.Codon[:], fg.Total, 3))
	_, _ = fmt.Fprintf(out, "%.3f bits per base in 6mers\n", hextable.Information(fg.Hex[:], fg.Total, 6))

	var bg *hextable.Counts
	if o.Background != "" {
		bgSeqs, err := trainingSet(ctx, o.Background)
		if err != nil {
			return err
		}
		bg = count(bgSeqs, stride)
		cmdutil.Infof(stderr, o.Quiet, "background: %s sequences, %s hexamers",
			humanize.Comma(int64(len(bgSeqs))), humanize.Comma(int64(bg.Observed())))
	}

	tab, st, err := hextable.Build(fg, bg, hextable.BuildOptions{Coding: !o.NonCoding})
	if err != nil {
		return err
	}
	reportStats(out, st, !o.NonCoding)

	if o.Out != "" {
		if err := hextable.WriteFile(o.Out, tab); err != nil {
			return err
		}
		cmdutil.Infof(stderr, o.Quiet, "wrote %s", o.Out)
	}

	if o.Top > 0 {
		_, _ = fmt.Fprintf(out, "top %d hexamers:\n", o.Top)
		for _, e := range tab.Top(o.Top) {
			_, _ = fmt.Fprintf(out, "  %s  %7.3f\n", e.Hexamer, e.Score)
		}
	}

	evalSeqs := train
	if o.Evaluate != "" {
		if evalSeqs, err = trainingSet(ctx, o.Evaluate); err != nil {
			return err
		}
	}
	reportEvaluation(out, hextable.Evaluate(evalSeqs, tab, stride))
	return nil
}

func reportStats(w io.Writer, st hextable.Stats, coding bool) {
	switch st.Method {
	case hextable.LikelihoodRatio:
		_, _ = fmt.Fprintf(w, "LLR table: %6.3f bits per triplet in coding\n"+
			"           %6.3f bits per triplet in non-coding\n", st.CodingBits, st.ReferenceBits)
	default:
		_, _ = fmt.Fprintf(w, "Hex table: %6.3f bits per triplet in coding\n"+
			"           %6.3f bits per triplet in scrambled coding\n", st.CodingBits, st.ReferenceBits)
	}
	_, _ = fmt.Fprintf(w, "           min = %.2f, max = %.2f\n", st.Min, st.Max)
	if coding {
		_, _ = fmt.Fprintf(w, "           %d stops, %d missing\n", st.Stops, st.Missing)
	} else {
		_, _ = fmt.Fprintf(w, "           %d missing\n", st.Missing)
	}
}

func reportEvaluation(w io.Writer, ev hextable.Evaluation) {
	_, _ = fmt.Fprintf(w, "%d scores - average %.2f, max %.2f, min %.2f\n", ev.N, ev.Mean, ev.Max, ev.Min)
	_, _ = fmt.Fprintf(w, "            - %d less than 0\n", ev.Negative)
	for _, b := range ev.Hist {
		_, _ = fmt.Fprintf(w, "  %5d :  %d\n", b.Low, b.Count)
	}
}
