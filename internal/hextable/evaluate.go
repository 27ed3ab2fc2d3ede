package hextable

// ScoreSequence sums table scores over the same windows Counts.Add counts.
func ScoreSequence(seq []byte, t *Table, stride int) float64 {
	if stride < 1 {
		return 0
	}
	var score float64
	for p := 0; p+K < len(seq); p += stride {
		if h, ok := code(seq[p : p+K]); ok {
			score += t[h]
		}
	}
	return score
}

const (
	histLow   = -1000
	histHigh  = 999
	histWidth = 10
	histBins  = (histHigh - histLow + 1) / histWidth
)

// Bin is one histogram bucket of sequence scores, [Low, Low+10).
type Bin struct {
	Low   int
	Count int
}

// Evaluation summarises whole-sequence scores for a set of sequences.
type Evaluation struct {
	N        int
	Mean     float64
	Min, Max float64 // both start at 0
	Negative int
	Hist     []Bin // non-empty bins, ascending
}

// Evaluate scores every sequence with t.
func Evaluate(seqs [][]byte, t *Table, stride int) Evaluation {
	var (
		ev   Evaluation
		sum  float64
		hist [histBins]int
	)
	for _, s := range seqs {
		score := ScoreSequence(s, t, stride)
		ev.N++
		sum += score
		if score > ev.Max {
			ev.Max = score
		}
		if score < ev.Min {
			ev.Min = score
		}
		if score < 0 {
			ev.Negative++
		}
		if score < histLow {
			score = histLow
		}
		if score > histHigh {
			score = histHigh
		}
		hist[int(score-histLow)/histWidth]++
	}
	if ev.N > 0 {
		ev.Mean = sum / float64(ev.N)
	}
	for i, c := range hist {
		if c > 0 {
			ev.Hist = append(ev.Hist, Bin{Low: histLow + i*histWidth, Count: c})
		}
	}
	return ev
}
