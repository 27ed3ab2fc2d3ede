package hextable

import (
	"fmt"
	"math"
)

// Method selects the scoring strategy.
type Method int

const (
	// Composition scores each hexamer against the mean of its base
	// composition class in the same training set.
	Composition Method = iota
	// LikelihoodRatio scores coding against background frequencies.
	LikelihoodRatio
)

func (m Method) String() string {
	switch m {
	case Composition:
		return "composition"
	case LikelihoodRatio:
		return "llr"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// BuildOptions controls table construction.
type BuildOptions struct {
	// Coding forces StopScore onto every hexamer whose leading or trailing
	// codon is a stop. Off for non-coding tables.
	Coding bool
}

// Stats summarises a built table. Diagnostic only.
type Stats struct {
	Method Method

	// Bits per triplet under the coding distribution and under the
	// reference one (scrambled coding for Composition, background for
	// LikelihoodRatio).
	CodingBits    float64
	ReferenceBits float64

	Min, Max float64 // over scored entries, both start at 0
	Stops    int
	Missing  int
}

// Build returns the score table for fg. With bg == nil the composition
// method is used, otherwise the log-likelihood ratio of fg to bg.
func Build(fg, bg *Counts, opts BuildOptions) (*Table, Stats, error) {
	if !fg.complete() {
		return nil, Stats{}, fmt.Errorf("%w: coding histogram", ErrIncompleteTrainingData)
	}
	if bg == nil {
		t, st := buildComposition(fg, opts)
		return t, st, nil
	}
	if !bg.complete() {
		return nil, Stats{}, fmt.Errorf("%w: background histogram", ErrIncompleteTrainingData)
	}
	t, st := buildLikelihoodRatio(fg, bg, opts)
	return t, st, nil
}

// compositionKey gives hexamers with the same base multiset the same key:
// one decimal digit per base count (A units, C tens, G hundreds, T
// thousands).
func compositionKey(code int) int {
	k := 0
	for j := 0; j < K; j++ {
		switch code & 0x3 {
		case 0:
			k += 1
		case 1:
			k += 10
		case 2:
			k += 100
		case 3:
			k += 1000
		}
		code >>= 2
	}
	return k
}

const compositionKeys = 7000 // 6 bases of one kind is at most 6000

func buildComposition(fg *Counts, opts BuildOptions) (*Table, Stats) {
	var (
		t     Table
		st    = Stats{Method: Composition}
		sum   [compositionKeys]float64
		n     [compositionKeys]int
		total = float64(fg.Total)
	)
	for i := 0; i < Size; i++ {
		k := compositionKey(i)
		sum[k] += float64(fg.Hex[i])
		n[k]++
	}
	for k := range sum {
		if n[k] > 0 {
			sum[k] /= float64(n[k])
		}
	}

	var e, s float64
	for i := 0; i < Size; i++ {
		if opts.Coding && HasStop(i) {
			t[i] = StopScore
			st.Stops++
			continue
		}
		if fg.Hex[i] == 0 {
			t[i] = MissingScore
			st.Missing++
			continue
		}
		mean := sum[compositionKey(i)]
		t[i] = math.Log2(float64(fg.Hex[i]) / mean)
		s += t[i] * mean / total
		e += t[i] * float64(fg.Hex[i]) / total
		st.Min = math.Min(st.Min, t[i])
		st.Max = math.Max(st.Max, t[i])
	}
	st.CodingBits = 0.5 * e
	st.ReferenceBits = 0.5 * s
	return &t, st
}

func buildLikelihoodRatio(fg, bg *Counts, opts BuildOptions) (*Table, Stats) {
	var (
		t   Table
		st  = Stats{Method: LikelihoodRatio}
		rat = float64(bg.Total) / float64(fg.Total)
	)
	var s, e float64
	for i := 0; i < Size; i++ {
		if opts.Coding && HasStop(i) {
			t[i] = StopScore
			st.Stops++
			continue
		}
		if fg.Hex[i] == 0 || bg.Hex[i] == 0 {
			t[i] = MissingScore
			st.Missing++
			continue
		}
		t[i] = math.Log2(rat * float64(fg.Hex[i]) / float64(bg.Hex[i]))
		s += t[i] * float64(fg.Hex[i]) / float64(fg.Total)
		e += t[i] * float64(bg.Hex[i]) / float64(bg.Total)
		st.Min = math.Min(st.Min, t[i])
		st.Max = math.Max(st.Max, t[i])
	}
	st.CodingBits = 0.5 * s
	st.ReferenceBits = 0.5 * e
	return &t, st
}
