package alphabet

// RevComp returns the reverse complement of an index-encoded sequence in a
// new slice. Base b complements to 3-b; Unknown stays Unknown.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := seq[n-1-i]
		if b > T {
			out[i] = b
		} else {
			out[i] = T - b
		}
	}
	return out
}
