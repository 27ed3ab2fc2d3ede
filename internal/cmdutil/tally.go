// internal/cmdutil/tally.go
package cmdutil

import (
	"io"

	"github.com/dustin/go-humanize"

	"hexamer/internal/engine"
)

// Tally accumulates run totals for the closing INFO line.
type Tally struct {
	Sequences    int64
	Bases        int64
	Segments     int64
	SegmentBases int64
}

// Add folds one result into the totals.
func (t *Tally) Add(r engine.Result) {
	t.Sequences++
	t.Bases += int64(r.Length)
	t.Segments += int64(len(r.Segments))
	t.SegmentBases += int64(r.TotalLength)
}

// Report prints the totals as one INFO line unless quiet.
func (t Tally) Report(w io.Writer, quiet bool) {
	Infof(w, quiet, "scanned %s sequences (%s bases): %s segments covering %s bases",
		humanize.Comma(t.Sequences), humanize.Comma(t.Bases),
		humanize.Comma(t.Segments), humanize.Comma(t.SegmentBases))
}
