// internal/engine/engine.go
package engine

import (
	"hexamer/internal/alphabet"
	"hexamer/internal/hextable"
)

// Config holds scan parameters.
type Config struct {
	Threshold float64 // segments must score strictly above this
	NonCoding bool    // stride 1, no reading frame
}

// Engine scans sequences against one table. It holds no per-sequence state
// and is safe for concurrent use.
type Engine struct {
	cfg Config
	tab *hextable.Table
}

// New creates a new Engine.
func New(c Config, tab *hextable.Table) *Engine { return &Engine{cfg: c, tab: tab} }

// Stride is 3 for coding scans and 1 for non-coding ones.
func (e *Engine) Stride() int {
	if e.cfg.NonCoding {
		return 1
	}
	return 3
}

func (e *Engine) frame(offset int) int {
	if e.cfg.NonCoding {
		return FrameNone
	}
	return offset
}

// rcToFwd maps a span found at offset on the reverse complement of a
// seqLen-long sequence back to forward coordinates.
func rcToFwd(seqLen, offset int, sp Span) (start, end int) {
	return seqLen - 1 - sp.J - offset, seqLen - 1 - sp.I - offset
}

// pass scans one frame offset of seq.
func (e *Engine) pass(seq []byte, offset int) []Span {
	stride := e.Stride()
	partial := Profile(seq, e.tab, stride, offset)
	if partial == nil {
		return nil
	}
	loclen := len(seq) - offset
	loclen -= loclen % stride
	return MaxSegments(partial, center, loclen-3, stride, e.cfg.Threshold)
}

// Scan runs every frame on the forward strand and then on the reverse
// complement. seq holds base indices and is not modified; ambiguous bases
// score as C.
func (e *Engine) Scan(id string, seq []byte) Result {
	res := Result{ID: id, Length: len(seq)}
	if len(seq) < hextable.K || e.tab == nil {
		return res
	}
	fwd := alphabet.Resolve(append([]byte(nil), seq...))
	stride := e.Stride()

	for off := 0; off < stride; off++ {
		for _, sp := range e.pass(fwd, off) {
			res.add(Segment{Start: sp.I + off, End: sp.J + off, Score: sp.Score, Strand: Forward, Frame: e.frame(off)})
		}
	}

	rc := alphabet.RevComp(fwd)
	for off := 0; off < stride; off++ {
		for _, sp := range e.pass(rc, off) {
			start, end := rcToFwd(len(seq), off, sp)
			res.add(Segment{Start: start, End: end, Score: sp.Score, Strand: Reverse, Frame: e.frame(off)})
		}
	}
	return res
}

func (r *Result) add(s Segment) {
	r.Segments = append(r.Segments, s)
	r.TotalLength += s.Len()
}
