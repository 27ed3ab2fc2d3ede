// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"runtime"
	"sync"

	"hexamer/internal/alphabet"
	"hexamer/internal/engine"
	"hexamer/internal/fasta"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads int // number of worker goroutines; <1 means runtime.NumCPU()

	// OnBad is consulted for records with a rejected character. Return nil
	// to skip the record, or an error to stop the run. nil stops on the
	// first bad record.
	OnBad func(*fasta.BadCharError) error
}

// ForEachResult scans every record of seqFiles and calls visit once per
// record, in file and record order regardless of Threads. It returns the
// first error encountered (including context cancellation).
func ForEachResult(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	sc Scanner,
	visit func(engine.Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = runtime.NumCPU()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		n          int
		rec        fasta.Record
		sourceFile string
	}
	type done struct {
		n   int
		res engine.Result
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan done, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					res := sc.Scan(j.rec.ID, j.rec.Seq)
					res.SourceFile = j.sourceFile
					select {
					case results <- done{n: j.n, res: res}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: hold early arrivals until their predecessors are visited.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]engine.Result)
		next := 0
		for d := range results {
			if cerr != nil {
				continue
			}
			pending[d.n] = d.res
			for {
				r, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if err := visit(r); err != nil {
					cerr = err
					cancel()
					break
				}
			}
		}
	}()

	// Feed work
	var ferr error
	n := 0
	for _, fa := range seqFiles {
		err := fasta.ForEachPathCtx(ctx, fa, alphabet.Scan, func(rec fasta.Record) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- job{n: n, rec: rec, sourceFile: fa}:
				n++
				return nil
			}
		}, cfg.OnBad)
		if err != nil {
			ferr = err
			break
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if cerr != nil {
		return cerr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return ferr
}
