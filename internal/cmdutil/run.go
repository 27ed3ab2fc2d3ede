// internal/cmdutil/run.go
package cmdutil

import (
	"context"

	"hexamer/internal/engine"
	"hexamer/internal/pipeline"
)

// RunStream runs the shared pipeline and streams each result via send, in
// input order. It returns the run totals and the first error encountered.
// prog may be nil.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	seqFiles []string,
	sc pipeline.Scanner,
	prog *Progress,
	send func(engine.Result) error,
) (Tally, error) {
	var t Tally
	err := pipeline.ForEachResult(ctx, cfg, seqFiles, sc, func(r engine.Result) error {
		if err := send(r); err != nil {
			return err
		}
		t.Add(r)
		prog.Increment()
		return nil
	})
	return t, err
}
