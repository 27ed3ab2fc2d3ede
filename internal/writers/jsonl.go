// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"hexamer/internal/engine"
	"hexamer/internal/jsonlutil"
	"hexamer/internal/output"
)

// streamJSONL writes one JSON line per segment, or per sequence in
// summary mode (v1 wire types).
func streamJSONL(w io.Writer, in <-chan engine.Result, opt Options) error {
	ch, done := jsonlutil.Start[engine.Result](w, cap(in),
		func(enc *json.Encoder, r engine.Result) error {
			if opt.Summary {
				return enc.Encode(output.ToAPISummary(r))
			}
			for _, s := range r.Segments {
				if err := enc.Encode(output.ToAPISegment(opt.Context, r, s)); err != nil {
					return err
				}
			}
			return nil
		},
		IsBrokenPipe,
	)
	for r := range in {
		ch <- r
	}
	close(ch)
	return <-done
}
