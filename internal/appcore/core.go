// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"hexamer/internal/cmdutil"
	"hexamer/internal/engine"
	"hexamer/internal/fasta"
	"hexamer/internal/hextable"
	"hexamer/internal/pipeline"
	"hexamer/internal/writers"
)

// Options are the resolved scan settings shared by every front end.
type Options struct {
	SeqFiles []string

	Threshold float64
	NonCoding bool
	SkipBad   bool

	Threads int

	Quiet    bool
	Progress bool
}

// WriterFactory starts the goroutine that serialises results.
type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error)
}

// Run scans o.SeqFiles with tab and streams results through wf. It returns
// the process exit code: 0 ok (including broken pipes), 3 input or output
// failure, 130 cancelled.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	tab *hextable.Table,
	wf WriterFactory,
) int {
	outw := bufio.NewWriter(stdout)

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	eng := engine.New(engine.Config{
		Threshold: o.Threshold,
		NonCoding: o.NonCoding,
	}, tab)

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var prog *cmdutil.Progress
	if o.Progress {
		prog = cmdutil.NewProgress(stderr, "scanning")
	}

	cfg := pipeline.Config{Threads: thr}
	if o.SkipBad {
		cfg.OnBad = func(bad *fasta.BadCharError) error {
			cmdutil.Warnf(stderr, o.Quiet, "skipping sequence: %v", bad)
			return nil
		}
	}

	tally, perr := cmdutil.RunStream(ctx, cfg, o.SeqFiles, eng, prog,
		func(r engine.Result) error {
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)
	prog.Done()

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	tally.Report(stderr, o.Quiet)
	return 0
}
