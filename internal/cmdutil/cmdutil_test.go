package cmdutil

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hexamer/internal/engine"
	"hexamer/internal/pipeline"
)

func TestWarnfInfof(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, false, "skipped %s", "x")
	Infof(&b, false, "n=%d", 3)
	Warnf(&b, true, "hidden")
	Infof(&b, true, "hidden")
	if got := b.String(); got != "WARN: skipped x\nINFO: n=3\n" {
		t.Fatalf("got %q", got)
	}
}

func TestTallyReport(t *testing.T) {
	var tl Tally
	tl.Add(engine.Result{Length: 1234567, TotalLength: 4321, Segments: make([]engine.Segment, 2)})
	tl.Add(engine.Result{Length: 10})
	if tl.Sequences != 2 || tl.Bases != 1234577 || tl.Segments != 2 || tl.SegmentBases != 4321 {
		t.Fatalf("tally = %+v", tl)
	}
	var b bytes.Buffer
	tl.Report(&b, false)
	want := "INFO: scanned 2 sequences (1,234,577 bases): 2 segments covering 4,321 bases\n"
	if b.String() != want {
		t.Fatalf("got %q, want %q", b.String(), want)
	}
}

type lenScanner struct{}

func (lenScanner) Scan(id string, seq []byte) engine.Result {
	return engine.Result{ID: id, Length: len(seq)}
}

func TestRunStream(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "r.fa")
	if err := os.WriteFile(fn, []byte(">a\nACGT\n>b\nAC\nGT\nAA\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	var ids []string
	var stderr bytes.Buffer
	prog := NewProgress(&stderr, "scanning")
	tl, err := RunStream(context.Background(), pipeline.Config{Threads: 2}, []string{fn}, lenScanner{}, prog,
		func(r engine.Result) error {
			ids = append(ids, r.ID)
			return nil
		})
	prog.Done()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(ids, ",") != "a,b" || tl.Sequences != 2 || tl.Bases != 10 {
		t.Fatalf("ids=%v tally=%+v", ids, tl)
	}
}

func TestRunStreamSendError(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "r.fa")
	if err := os.WriteFile(fn, []byte(">a\nACGT\n>b\nACGT\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	boom := errors.New("boom")
	tl, err := RunStream(context.Background(), pipeline.Config{Threads: 1}, []string{fn}, lenScanner{}, nil,
		func(engine.Result) error { return boom })
	if !errors.Is(err, boom) || tl.Sequences != 0 {
		t.Fatalf("err=%v tally=%+v", err, tl)
	}
}

func TestNilProgress(t *testing.T) {
	var p *Progress
	p.Increment()
	p.Done()
}
