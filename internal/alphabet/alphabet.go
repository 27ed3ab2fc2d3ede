// internal/alphabet/alphabet.go
package alphabet

// Base indices used throughout the module. A hexamer code packs six of
// these, first base in the most significant bits.
const (
	A byte = 0
	C byte = 1
	G byte = 2
	T byte = 3

	// Unknown marks an ambiguous base (N) that the scanning codec accepts.
	Unknown byte = 4
)

// Conversion sentinels returned by Codec.Index.
const (
	Ignore int8 = -1 // skip silently (whitespace, digits)
	Bad    int8 = -2 // not a sequence character
)

// Codec maps input characters to base indices or a sentinel.
type Codec struct {
	conv [256]int8
}

func newCodec(acceptN bool) *Codec {
	c := &Codec{}
	for i := range c.conv {
		c.conv[i] = Bad
	}
	for ch := '0'; ch <= '9'; ch++ {
		c.conv[ch] = Ignore
	}
	for _, ch := range []byte{' ', '\t', '\n', '\r'} {
		c.conv[ch] = Ignore
	}
	for i, ch := range []byte("ACGT") {
		c.conv[ch] = int8(i)
		c.conv[ch+'a'-'A'] = int8(i)
	}
	if acceptN {
		c.conv['N'] = int8(Unknown)
		c.conv['n'] = int8(Unknown)
	}
	return c
}

var (
	// Scan accepts A/C/G/T and N (as Unknown) in either case.
	Scan = newCodec(true)
	// Strict accepts only A/C/G/T; N is an error. Used for training sets.
	Strict = newCodec(false)
)

// Index returns the base index for ch, or Ignore/Bad.
func (c *Codec) Index(ch byte) int8 { return c.conv[ch] }

// Resolve replaces Unknown bases with C in place, the fixed fallback used
// when scoring. It returns seq for convenience.
func Resolve(seq []byte) []byte {
	for i, b := range seq {
		if b > T {
			seq[i] = C
		}
	}
	return seq
}

const letters = "ACGTN"

// Decode renders base indices as upper-case letters.
func Decode(seq []byte) string {
	out := make([]byte, len(seq))
	for i, b := range seq {
		if int(b) < len(letters) {
			out[i] = letters[b]
		} else {
			out[i] = 'N'
		}
	}
	return string(out)
}

// Encode converts a plain ACGT string with the Strict codec, skipping
// ignorable characters. ok is false on the first bad character.
func Encode(s string) (seq []byte, ok bool) {
	seq = make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch v := Strict.Index(s[i]); v {
		case Ignore:
		case Bad:
			return nil, false
		default:
			seq = append(seq, byte(v))
		}
	}
	return seq, true
}
