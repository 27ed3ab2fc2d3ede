// internal/engine/scan.go
package engine

// Span is a maximal segment in profile-local coordinates.
type Span struct {
	I, J  int
	Score float64 // partial[J] - partial[I]
}

// MaxSegments returns every pair (i, j), i < j, on the grid first,
// first+stride, ... <= last such that partial[j] is the maximum at or after
// i, partial[i] is the minimum at or before j, and the difference exceeds
// threshold. Equal extrema resolve to the lowest index on both sides.
//
// The emitted spans are disjoint and ordered by start. Malformed input
// yields nil.
func MaxSegments(partial []float64, first, last, stride int, threshold float64) []Span {
	if stride < 1 || first < 0 || len(partial) == 0 {
		return nil
	}
	if last >= len(partial) {
		last = len(partial) - 1
	}
	if last < first {
		return nil
	}
	m := (last-first)/stride + 1
	if m < 2 {
		return nil
	}
	at := func(s int) float64 { return partial[first+s*stride] }

	// Slots, not profile indices, so the scratch is exactly m long.
	minSoFar := make([]int, m)
	maxFromHere := make([]int, m)

	k := 0
	for s := 0; s < m; s++ {
		if at(s) < at(k) {
			k = s
		}
		minSoFar[s] = k
	}
	k = m - 1
	for s := m - 1; s >= 0; s-- {
		if at(s) >= at(k) {
			k = s
		}
		maxFromHere[s] = k
	}

	var out []Span
	for s := 0; s < m; s++ {
		j := maxFromHere[s]
		if j == s || minSoFar[j] != s {
			continue
		}
		if score := at(j) - at(s); score > threshold {
			out = append(out, Span{I: first + s*stride, J: first + j*stride, Score: score})
		}
	}
	return out
}
