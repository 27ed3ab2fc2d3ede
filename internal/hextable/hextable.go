// Package hextable builds, stores and evaluates hexamer score tables.
//
// A table has one score per 12-bit hexamer code. The code packs six base
// indices (A=0,C=1,G=2,T=3), first base in the two most significant bits,
// so code>>6 is the leading codon and code&0x3f the trailing codon.
package hextable

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shenwei356/kmers"
)

const (
	// K is the word length.
	K = 6
	// Size is the number of distinct hexamer codes.
	Size = 1 << (2 * K)
	// Mask keeps the low 12 bits of a rolling code.
	Mask = Size - 1

	// StopScore is forced onto stop-codon hexamers in coding tables.
	StopScore = -100.0
	// MissingScore is used for a hexamer never observed in composition mode.
	MissingScore = -5.0
)

// Codon values of TAA, TAG and TGA.
const (
	codonTAA = 48
	codonTAG = 50
	codonTGA = 56
)

var (
	// ErrIncompleteTrainingData means a histogram does not cover all 4096
	// hexamer slots.
	ErrIncompleteTrainingData = errors.New("incomplete training data")
	// ErrShortTable means a persisted table held fewer than 4096 entries.
	ErrShortTable = errors.New("hexamer table has fewer than 4096 entries")
)

// Table maps a hexamer code to its score. Read-only once built.
type Table [Size]float64

// IsStopCodon reports whether a 6-bit codon value is TAA, TAG or TGA.
func IsStopCodon(codon int) bool {
	return codon == codonTAA || codon == codonTAG || codon == codonTGA
}

// HasStop reports whether either codon of a hexamer code is a stop.
func HasStop(code int) bool {
	return IsStopCodon(code&0x3f) || IsStopCodon(code>>6)
}

// Hexamer renders a code as letters.
func Hexamer(code int) string {
	return string(kmers.Decode(uint64(code&Mask), K))
}

// Code encodes a six-letter ACGT word.
func Code(word string) (int, error) {
	if len(word) != K {
		return 0, fmt.Errorf("hexamer %q: want %d bases", word, K)
	}
	c, err := kmers.Encode([]byte(word))
	if err != nil {
		return 0, fmt.Errorf("hexamer %q: %w", word, err)
	}
	return int(c), nil
}

// code encodes six base indices; ok is false if any is not A/C/G/T.
func code(w []byte) (int, bool) {
	c := 0
	for _, b := range w[:K] {
		if b > 3 {
			return 0, false
		}
		c = c<<2 | int(b)
	}
	return c, true
}

// Entry is one scored hexamer, used for reporting.
type Entry struct {
	Code    int
	Hexamer string
	Score   float64
}

// Top returns the n highest-scoring hexamers, best first; ties keep code
// order.
func (t *Table) Top(n int) []Entry {
	if n <= 0 {
		return nil
	}
	if n > Size {
		n = Size
	}
	all := make([]Entry, Size)
	for c := range all {
		all[c] = Entry{Code: c, Score: t[c]}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Score > all[j].Score })
	out := all[:n]
	for i := range out {
		out[i].Hexamer = Hexamer(out[i].Code)
	}
	return out
}
