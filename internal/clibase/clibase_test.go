package clibase

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestRegisterAndFinish(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want error
	}{
		{nil, nil},
		{[]string{"-h"}, pflag.ErrHelp},
		{[]string{"--examples"}, ErrPrintedAndExitOK},
		{[]string{"-q", "-v"}, nil},
	} {
		var c Common
		fs := NewFlagSet("t")
		Register(fs, &c)
		if err := fs.Parse(tc.args); err != nil {
			t.Fatalf("%v: parse: %v", tc.args, err)
		}
		if err := Finish(&c); !errors.Is(err, tc.want) {
			t.Fatalf("%v: Finish = %v, want %v", tc.args, err, tc.want)
		}
	}
}

func TestPrintUsage(t *testing.T) {
	var c Common
	fs := NewFlagSet("tool")
	var thr float64
	fs.Float64VarP(&thr, "threshold", "T", 0, "score threshold")
	Register(fs, &c)
	var b bytes.Buffer
	PrintUsage(&b, fs, "tool", "does things", "[options] <in>")
	out := b.String()
	for _, want := range []string{"tool – does things", "Usage:\n  tool [options] <in>", "-T, --threshold", "-q, --quiet"} {
		if !strings.Contains(out, want) {
			t.Fatalf("usage missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "--threshold") > strings.Index(out, "--quiet") {
		t.Fatal("flags should keep registration order")
	}
}

func TestPrintExamples(t *testing.T) {
	var b bytes.Buffer
	PrintExamples(&b, "tool", func(w io.Writer) { _, _ = w.Write([]byte("body\n")) })
	if !strings.HasPrefix(b.String(), "tool quickstart\n\nbody\n") {
		t.Fatalf("got %q", b.String())
	}
}
