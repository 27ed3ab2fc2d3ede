// internal/engine/segment.go
package engine

// Strand of a segment relative to the input sequence.
type Strand byte

const (
	Forward Strand = '+'
	Reverse Strand = '-'
)

func (s Strand) String() string { return string(s) }

// FrameNone marks segments from non-coding (stride 1) scans.
const FrameNone = -1

// Segment is a maximal-scoring region in input coordinates, 0-based and
// inclusive, Start <= End.
type Segment struct {
	Start  int
	End    int
	Score  float64
	Strand Strand
	Frame  int // stride offset 0..2, or FrameNone
}

// Len is the distance End-Start used for per-sequence totals.
func (s Segment) Len() int { return s.End - s.Start }

// Result is everything found on one sequence.
type Result struct {
	ID          string
	SourceFile  string
	Length      int
	Segments    []Segment
	TotalLength int // sum of Segment.Len
}
