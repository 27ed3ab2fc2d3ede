// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"hexamer/internal/alphabet"
)

// Record is one encoded FASTA sequence. Seq holds base indices produced by
// the reader's codec, not letters.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// BadCharError reports a character the codec rejects. The reader has
// already skipped the rest of the offending record when it is returned.
type BadCharError struct {
	File  string
	SeqID string
	Char  byte
	Line  int // 1-based
	Base  int // 0-based index of the base that would have been added
}

func (e *BadCharError) Error() string {
	where := fmt.Sprintf("line %d, base %d", e.Line, e.Base)
	if e.File != "" {
		where = e.File + ": " + where
	}
	if e.SeqID != "" {
		where += ", sequence " + e.SeqID
	}
	return fmt.Sprintf("bad char 0x%x = %q at %s", e.Char, e.Char, where)
}

// Reader decodes FASTA records one at a time.
type Reader struct {
	br      *bufio.Reader
	codec   *alphabet.Codec
	line    int
	pending []byte // header line read ahead of the next record
	started bool
	done    bool
}

// NewReader wraps r. A nil codec means alphabet.Scan.
func NewReader(r io.Reader, codec *alphabet.Codec) *Reader {
	if codec == nil {
		codec = alphabet.Scan
	}
	return &Reader{br: bufio.NewReaderSize(r, 64<<10), codec: codec}
}

func (r *Reader) readLine() ([]byte, error) {
	line, err := r.br.ReadBytes('\n')
	if len(line) > 0 {
		r.line++
		line = bytes.TrimRight(line, "\r\n")
		return line, nil
	}
	return nil, err
}

// Next returns the next record, io.EOF at end of input, or a
// *BadCharError for a record containing a rejected character. After a
// *BadCharError the reader is positioned at the following record.
func (r *Reader) Next() (Record, error) {
	if r.done {
		return Record{}, io.EOF
	}
	var (
		rec     Record
		badErr  *BadCharError
		haveHdr bool
		first   []byte
	)

	switch {
	case r.pending != nil:
		haveHdr = true
		rec.ID, rec.Desc = parseHeader(r.pending[1:])
		r.pending = nil
	case !r.started:
		// Skip leading blank lines; input may lack a header line.
		for {
			line, err := r.readLine()
			if err != nil {
				if errors.Is(err, io.EOF) {
					r.done = true
					return Record{}, io.EOF
				}
				return Record{}, err
			}
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}
			if line[0] == '>' {
				haveHdr = true
				rec.ID, rec.Desc = parseHeader(line[1:])
			} else {
				first = line
			}
			break
		}
	default:
		r.done = true
		return Record{}, io.EOF
	}
	r.started = true

	seq := make([]byte, 0, 1024)
	consume := func(line []byte) {
		if badErr != nil {
			return
		}
		for _, ch := range line {
			switch v := r.codec.Index(ch); v {
			case alphabet.Ignore:
			case alphabet.Bad:
				badErr = &BadCharError{SeqID: rec.ID, Char: ch, Line: r.line, Base: len(seq)}
				return
			default:
				seq = append(seq, byte(v))
			}
		}
	}
	if first != nil {
		consume(first)
	}

	for {
		line, err := r.readLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return Record{}, fmt.Errorf("fasta read: %w", err)
			}
			r.done = true
			break
		}
		if len(line) > 0 && line[0] == '>' {
			r.pending = line
			break
		}
		if len(line) > 0 && line[0] == ';' {
			continue
		}
		consume(line)
	}

	if badErr != nil {
		return Record{}, badErr
	}
	if !haveHdr && len(seq) == 0 {
		r.done = true
		return Record{}, io.EOF
	}
	rec.Seq = seq
	return rec, nil
}

func parseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
