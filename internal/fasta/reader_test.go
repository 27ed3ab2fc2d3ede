// internal/fasta/reader_test.go
package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hexamer/internal/alphabet"
)

const plain = `>seq1 first one
ACGT
acgt
>seq2
NNnn
`

func readAll(t *testing.T, r *Reader) []Record {
	t.Helper()
	var out []Record
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		out = append(out, rec)
	}
}

func TestReaderParsesRecords(t *testing.T) {
	recs := readAll(t, NewReader(strings.NewReader(plain), alphabet.Scan))
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %d", len(recs))
	}
	if recs[0].ID != "seq1" || recs[0].Desc != "first one" {
		t.Errorf("header parse: %+v", recs[0])
	}
	if got := alphabet.Decode(recs[0].Seq); got != "ACGTACGT" {
		t.Errorf("seq1 = %s", got)
	}
	if got := alphabet.Decode(recs[1].Seq); got != "NNNN" {
		t.Errorf("seq2 = %s", got)
	}
}

func TestReaderHeaderless(t *testing.T) {
	recs := readAll(t, NewReader(strings.NewReader("\nAC GT 12\nTT\n"), nil))
	if len(recs) != 1 || recs[0].ID != "" || alphabet.Decode(recs[0].Seq) != "ACGTTT" {
		t.Fatalf("headerless parse: %+v", recs)
	}
}

func TestReaderEmptyInput(t *testing.T) {
	if recs := readAll(t, NewReader(strings.NewReader(""), nil)); len(recs) != 0 {
		t.Fatalf("want no records, got %d", len(recs))
	}
}

func TestReaderBadCharSkipsRecord(t *testing.T) {
	in := ">a\nACGT\nACXT\nGG\n>b\nTTTT\n"
	r := NewReader(strings.NewReader(in), alphabet.Scan)
	_, err := r.Next()
	var bad *BadCharError
	if !errors.As(err, &bad) {
		t.Fatalf("want BadCharError, got %v", err)
	}
	if bad.Char != 'X' || bad.Line != 3 || bad.Base != 6 || bad.SeqID != "a" {
		t.Fatalf("bad char context: %+v", bad)
	}
	rec, err := r.Next()
	if err != nil || rec.ID != "b" {
		t.Fatalf("reader should resume at next record, got %+v %v", rec, err)
	}
}

func TestStrictCodecRejectsN(t *testing.T) {
	r := NewReader(strings.NewReader(">x\nACNT\n"), alphabet.Strict)
	_, err := r.Next()
	var bad *BadCharError
	if !errors.As(err, &bad) || bad.Char != 'N' {
		t.Fatalf("strict codec should reject N, got %v", err)
	}
}

func writeGz(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	fh, err := os.Create(fn)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	gw.Close()
	fh.Close()
	return fn
}

func TestForEachPathGzip(t *testing.T) {
	fn := writeGz(t, t.TempDir(), "test.fa.gz", plain)
	recs, err := ReadAllPath(context.Background(), fn, alphabet.Scan)
	if err != nil {
		t.Fatalf("read gz: %v", err)
	}
	if len(recs) != 2 || recs[0].ID != "seq1" || recs[1].ID != "seq2" {
		t.Fatalf("gzip parse failed: %+v", recs)
	}
}

func TestForEachPathSkipPolicy(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bad.fa")
	if err := os.WriteFile(fn, []byte(">a\nAC?T\n>b\nACGT\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	// abort (default)
	_, err := ReadAllPath(context.Background(), fn, alphabet.Scan)
	var bad *BadCharError
	if !errors.As(err, &bad) || bad.File != fn {
		t.Fatalf("want BadCharError with file, got %v", err)
	}

	// skip
	var ids []string
	skipped := 0
	err = ForEachPathCtx(context.Background(), fn, alphabet.Scan,
		func(r Record) error { ids = append(ids, r.ID); return nil },
		func(*BadCharError) error { skipped++; return nil },
	)
	if err != nil || skipped != 1 || len(ids) != 1 || ids[0] != "b" {
		t.Fatalf("skip policy: err=%v skipped=%d ids=%v", err, skipped, ids)
	}
}

func TestForEachPathCancelled(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "x.fa")
	if err := os.WriteFile(fn, []byte(">s\nACGT\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n := 0
	err := ForEachPathCtx(ctx, fn, nil, func(Record) error { n++; return nil }, nil)
	if !errors.Is(err, context.Canceled) || n != 0 {
		t.Fatalf("want canceled with no records, got err=%v n=%d", err, n)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
