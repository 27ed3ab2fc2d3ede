// internal/output/text.go
package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"hexamer/internal/engine"
)

// FrameColumn renders a frame as the GFF frame column.
func FrameColumn(frame int) string {
	if frame == engine.FrameNone {
		return "."
	}
	return strconv.Itoa(frame)
}

// FormatGFF returns one GFF line (no trailing newline). Coordinates are
// printed 1-based.
func FormatGFF(ctx Context, id string, s engine.Segment) string {
	return fmt.Sprintf("%s\t%s\t%s\t%d\t%d\t%.4f\t%c\t%s",
		id, Source, ctx.Feature,
		s.Start+1, s.End+1,
		s.Score, byte(s.Strand), FrameColumn(s.Frame),
	)
}

// FormatSummary returns the per-sequence summary line (no trailing newline).
func FormatSummary(r engine.Result) string {
	return fmt.Sprintf("%s\t%d\t%d", r.ID, r.Length, r.TotalLength)
}

// WriteGFF prints every segment of r.
func WriteGFF(w io.Writer, ctx Context, r engine.Result) error {
	for _, s := range r.Segments {
		if _, err := fmt.Fprintln(w, FormatGFF(ctx, r.ID, s)); err != nil {
			return err
		}
	}
	return nil
}

// StreamText consumes results from in and writes GFF lines, or summary
// lines when summary is set. It drains in even after a write error.
func StreamText(w io.Writer, in <-chan engine.Result, ctx Context, summary bool) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	var werr error
	for r := range in {
		if werr != nil {
			continue
		}
		if summary {
			_, werr = fmt.Fprintln(bw, FormatSummary(r))
		} else {
			werr = WriteGFF(bw, ctx, r)
		}
	}
	if werr != nil {
		return werr
	}
	return bw.Flush()
}
