// pkg/api/segments_v1.go
package api

// SegmentV1 is the stable JSON/JSONL schema for one coding-potential segment.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
//
// Start and End are 1-based and inclusive, as in the GFF report.
type SegmentV1 struct {
	SequenceID string  `json:"sequence_id"`
	Source     string  `json:"source"`
	Feature    string  `json:"feature"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
	Score      float64 `json:"score"`
	Strand     string  `json:"strand"`          // "+" | "-"
	Frame      *int    `json:"frame,omitempty"` // absent for non-coding scans
	SourceFile string  `json:"source_file,omitempty"`
}

// SequenceSummaryV1 is the stable schema for --summary output.
type SequenceSummaryV1 struct {
	SequenceID    string `json:"sequence_id"`
	Length        int    `json:"length"`
	SegmentLength int    `json:"segment_length"`
	Segments      int    `json:"segments"`
	SourceFile    string `json:"source_file,omitempty"`
}
