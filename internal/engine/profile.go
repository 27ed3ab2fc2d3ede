// internal/engine/profile.go
package engine

import (
	"hexamer/internal/alphabet"
	"hexamer/internal/hextable"
)

// center is the local index a window's score is recorded at: the window
// starting at p contributes to partial[p+center].
const center = 3

func base(b byte) int {
	if b > alphabet.T {
		return int(alphabet.C)
	}
	return int(b)
}

// walk visits each window of seq[offset:] stepped by stride, calling fn with
// the local index the window is recorded at and its hexamer code. The code
// is rolled forward one base at a time.
func walk(seq []byte, stride, offset int, fn func(i, code int)) {
	if stride < 1 || offset < 0 || len(seq)-offset < hextable.K {
		return
	}
	s := seq[offset:]
	n := len(s)
	code := 0
	for _, b := range s[:hextable.K] {
		code = code<<2 | base(b)
	}
	next := hextable.K
	for i := center; i <= n-3; i += stride {
		fn(i, code)
		for j := 0; j < stride && next < n; j++ {
			code = (code<<2 | base(s[next])) & hextable.Mask
			next++
		}
	}
}

// Profile returns the partial-sum profile of seq[offset:]. Local index i
// holds the total of every window recorded at or before i; written indices
// are 3, 3+stride, ... up to len(seq)-offset-3. It returns nil when fewer
// than six bases remain.
func Profile(seq []byte, tab *hextable.Table, stride, offset int) []float64 {
	if tab == nil || stride < 1 || offset < 0 || len(seq)-offset < hextable.K {
		return nil
	}
	partial := make([]float64, len(seq)-offset)
	var score float64
	walk(seq, stride, offset, func(i, code int) {
		score += tab[code]
		partial[i] = score
	})
	return partial
}
