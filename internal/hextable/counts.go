package hextable

import "math"

// Counts is a smoothed hexamer histogram from one training set.
type Counts struct {
	Hex   [Size]int // pseudocount 1 per bucket
	Total int       // starts at Size

	Codon  [64]int // leading codon of every counted window, unsmoothed
	Codons int
}

// NewCounts returns a histogram with the Dirichlet pseudocount applied.
func NewCounts() *Counts {
	c := &Counts{Total: Size}
	for i := range c.Hex {
		c.Hex[i] = 1
	}
	return c
}

// Add counts the hexamer windows of seq starting at 0, stride, 2*stride...
// A window whose last base is the final base of seq is not counted, so the
// trailing codon of a coding sequence (its stop) never contributes. Windows
// containing an ambiguous base are skipped.
func (c *Counts) Add(seq []byte, stride int) {
	if stride < 1 {
		return
	}
	for p := 0; p+K < len(seq); p += stride {
		h, ok := code(seq[p : p+K])
		if !ok {
			continue
		}
		c.Hex[h]++
		c.Total++
		c.Codon[h>>6]++
		c.Codons++
	}
}

// Observed is the number of windows counted, excluding pseudocounts.
func (c *Counts) Observed() int { return c.Total - Size }

// complete reports whether the histogram carries the pseudocount base of
// one observation per slot.
func (c *Counts) complete() bool {
	return c != nil && c.Total >= Size
}

// Information returns the Shannon entropy of a k-mer histogram in bits per
// base. total is the number of observations the frequencies are relative to.
func Information(counts []int, total, k int) float64 {
	if total <= 0 || k <= 0 {
		return 0
	}
	var h float64
	for _, n := range counts {
		if n == 0 {
			continue
		}
		x := float64(n) / float64(total)
		h -= x * math.Log(x)
	}
	return h / (float64(k) * math.Ln2)
}
