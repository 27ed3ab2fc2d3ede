// internal/writers/result.go
package writers

import (
	"errors"
	"io"
	"syscall"

	"hexamer/internal/engine"
	"hexamer/internal/output"
)

const (
	FormatGFF   = "gff"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

func init() {
	Register(FormatGFF, func(w io.Writer, in <-chan engine.Result, opt Options) error {
		return output.StreamText(w, in, opt.Context, opt.Summary)
	})
	Register(FormatJSON, func(w io.Writer, in <-chan engine.Result, opt Options) error {
		var buf []engine.Result
		for r := range in {
			buf = append(buf, r)
		}
		return output.WriteJSON(w, buf, opt.Context, opt.Summary)
	})
	Register(FormatJSONL, streamJSONL)
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers like `head` close early; that is not a failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// StartResultWriter spins up a writer goroutine for engine.Result items.
// The returned error channel yields exactly one value once in is closed.
func StartResultWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- engine.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		fn, err := lookup(format)
		if err != nil {
			for range in {
			}
			errCh <- err
			return
		}
		errCh <- fn(out, in, opt)
	}()
	return in, errCh
}
