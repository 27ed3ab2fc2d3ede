// internal/output/json.go
package output

import (
	"io"

	"hexamer/internal/engine"
	"hexamer/internal/jsonutil"
	"hexamer/pkg/api"
)

// ToAPISegment converts a domain Segment to the stable wire schema (v1).
func ToAPISegment(ctx Context, r engine.Result, s engine.Segment) api.SegmentV1 {
	v := api.SegmentV1{
		SequenceID: r.ID,
		Source:     Source,
		Feature:    ctx.Feature,
		Start:      s.Start + 1,
		End:        s.End + 1,
		Score:      s.Score,
		Strand:     s.Strand.String(),
		SourceFile: r.SourceFile,
	}
	if s.Frame != engine.FrameNone {
		f := s.Frame
		v.Frame = &f
	}
	return v
}

// ToAPISummary converts a Result to its v1 summary row.
func ToAPISummary(r engine.Result) api.SequenceSummaryV1 {
	return api.SequenceSummaryV1{
		SequenceID:    r.ID,
		Length:        r.Length,
		SegmentLength: r.TotalLength,
		Segments:      len(r.Segments),
		SourceFile:    r.SourceFile,
	}
}

// ToAPISegments flattens results into wire segments in report order.
func ToAPISegments(ctx Context, list []engine.Result) []api.SegmentV1 {
	out := make([]api.SegmentV1, 0, len(list))
	for _, r := range list {
		for _, s := range r.Segments {
			out = append(out, ToAPISegment(ctx, r, s))
		}
	}
	return out
}

// WriteJSON writes a single JSON array: segments, or per-sequence
// summaries when summary is set.
func WriteJSON(w io.Writer, list []engine.Result, ctx Context, summary bool) error {
	if summary {
		rows := make([]api.SequenceSummaryV1, 0, len(list))
		for _, r := range list {
			rows = append(rows, ToAPISummary(r))
		}
		return jsonutil.EncodePretty(w, rows)
	}
	return jsonutil.EncodePretty(w, ToAPISegments(ctx, list))
}
