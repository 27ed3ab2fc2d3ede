package appcore

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"hexamer/internal/engine"
	"hexamer/internal/hextable"
)

func spike(t *testing.T) *hextable.Table {
	t.Helper()
	var tab hextable.Table
	for i := range tab {
		tab[i] = -1
	}
	c, err := hextable.Code("GCGGCG")
	if err != nil {
		t.Fatal(err)
	}
	tab[c] = 10
	return &tab
}

func writeFA(t *testing.T, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "in.fa")
	if err := os.WriteFile(fn, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestRunGFF(t *testing.T) {
	fn := writeFA(t, ">s1 desc\nAAAAAAGCGGCGAAAAAA\n>s2\nACGT\n")
	var out, errb bytes.Buffer
	code := Run(context.Background(), &out, &errb, Options{SeqFiles: []string{fn}, Threads: 2},
		spike(t), NewResultWriterFactory("gff", "cds", false))
	if code != 0 {
		t.Fatalf("exit %d, stderr=%s", code, errb.String())
	}
	if want := "s1\thexamer\tcds\t7\t10\t10.0000\t+\t0\n"; out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
	if !strings.Contains(errb.String(), "INFO: scanned 2 sequences (22 bases)") {
		t.Fatalf("missing summary: %q", errb.String())
	}
}

func TestRunBadCharPolicy(t *testing.T) {
	fn := writeFA(t, ">a\nACGT\n>b\nAC*T\n>c\nAAAAAAGCGGCGAAAAAA\n")

	var out, errb bytes.Buffer
	code := Run(context.Background(), &out, &errb, Options{SeqFiles: []string{fn}, Threads: 1},
		spike(t), NewResultWriterFactory("gff", "f", true))
	if code != 3 || !strings.Contains(errb.String(), "bad char") {
		t.Fatalf("abort: exit %d stderr=%q", code, errb.String())
	}

	out.Reset()
	errb.Reset()
	code = Run(context.Background(), &out, &errb, Options{SeqFiles: []string{fn}, Threads: 1, SkipBad: true},
		spike(t), NewResultWriterFactory("gff", "f", true))
	if code != 0 {
		t.Fatalf("skip: exit %d stderr=%q", code, errb.String())
	}
	if out.String() != "a\t4\t0\nc\t18\t3\n" {
		t.Fatalf("summary = %q", out.String())
	}
	if !strings.Contains(errb.String(), "WARN: skipping sequence") {
		t.Fatalf("missing warning: %q", errb.String())
	}
}

func TestRunQuiet(t *testing.T) {
	fn := writeFA(t, ">a\nACGTACGT\n")
	var out, errb bytes.Buffer
	if code := Run(context.Background(), &out, &errb, Options{SeqFiles: []string{fn}, Quiet: true},
		spike(t), NewResultWriterFactory("gff", "f", false)); code != 0 {
		t.Fatalf("exit %d", code)
	}
	if errb.Len() != 0 {
		t.Fatalf("quiet run wrote %q", errb.String())
	}
}

func TestRunCancelled(t *testing.T) {
	fn := writeFA(t, ">a\nACGTACGT\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errb bytes.Buffer
	if code := Run(ctx, &out, &errb, Options{SeqFiles: []string{fn}}, spike(t),
		NewResultWriterFactory("gff", "f", false)); code != 130 {
		t.Fatalf("exit %d, want 130", code)
	}
}

type pipeWriter struct{}

func (pipeWriter) Write([]byte) (int, error) { return 0, syscall.EPIPE }

func TestRunBrokenPipeIsSuccess(t *testing.T) {
	fn := writeFA(t, ">a\nAAAAAAGCGGCGAAAAAA\n")
	var errb bytes.Buffer
	if code := Run(context.Background(), pipeWriter{}, &errb, Options{SeqFiles: []string{fn}, Quiet: true},
		spike(t), NewResultWriterFactory("gff", "f", false)); code != 0 {
		t.Fatalf("exit %d stderr=%q", code, errb.String())
	}
}

type failWriter struct{}

func (failWriter) Start(io.Writer, int) (chan<- engine.Result, <-chan error) {
	in := make(chan engine.Result)
	done := make(chan error, 1)
	go func() {
		for range in {
		}
		done <- os.ErrPermission
	}()
	return in, done
}

func TestRunWriterError(t *testing.T) {
	fn := writeFA(t, ">a\nACGTACGT\n")
	var out, errb bytes.Buffer
	if code := Run(context.Background(), &out, &errb, Options{SeqFiles: []string{fn}}, spike(t), failWriter{}); code != 3 {
		t.Fatalf("exit %d, want 3", code)
	}
}
