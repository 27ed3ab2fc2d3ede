package hextable

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

const perRow = 16

// Write stores t as 256 rows of 16 values. Sentinels below -10 are printed
// with one decimal, everything else with three.
func Write(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < Size; i++ {
		var err error
		if t[i] > -10 {
			_, err = fmt.Fprintf(bw, " %7.3f", t[i])
		} else {
			_, err = fmt.Fprintf(bw, " %7.1f", t[i])
		}
		if err != nil {
			return err
		}
		if (i+1)%perRow == 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteFile writes t to path.
func WriteFile(path string, t *Table) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("can't open output file %s: %w", path, err)
	}
	if err := Write(fh, t); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return fh.Close()
}

// Read parses 4096 whitespace-separated numbers. Anything after the last
// entry is ignored.
func Read(r io.Reader) (*Table, error) {
	var t Table
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	n := 0
	for n < Size && sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: can't parse entry %d %q", ErrShortTable, n, sc.Text())
		}
		t[n] = v
		n++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if n < Size {
		return nil, fmt.Errorf("%w: found %d", ErrShortTable, n)
	}
	return &t, nil
}

// ReadFile loads a table from path.
func ReadFile(path string) (*Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	t, err := Read(fh)
	if err != nil {
		return nil, fmt.Errorf("hexamer table %s: %w", path, err)
	}
	return t, nil
}
