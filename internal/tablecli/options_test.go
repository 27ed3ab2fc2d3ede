package tablecli

import (
	"errors"
	"testing"

	"github.com/spf13/pflag"
)

func TestParse(t *testing.T) {
	o, err := ParseArgs(NewFlagSet(), []string{"-o", "c.hex", "-2", "bg.fa", "-s", "held.fa", "--top", "5", "-q", "train.fa"})
	if err != nil {
		t.Fatal(err)
	}
	if o.Out != "c.hex" || o.Background != "bg.fa" || o.Evaluate != "held.fa" || o.Top != 5 || !o.Quiet || o.Training != "train.fa" || o.NonCoding {
		t.Fatalf("bad parse: %+v", o)
	}

	o, err = ParseArgs(NewFlagSet(), []string{"--noncoding", "--out=nc.hex", "train.fa"})
	if err != nil || !o.NonCoding || o.Out != "nc.hex" {
		t.Fatalf("long flags: %+v %v", o, err)
	}
}

func TestErrors(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"a.fa", "b.fa"},
		{"--top", "-1", "a.fa"},
		{"-2", "-", "-"},
		{"--bogus", "a.fa"},
	} {
		if _, err := ParseArgs(NewFlagSet(), args); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestHelp(t *testing.T) {
	if _, err := ParseArgs(NewFlagSet(), []string{"--help"}); !errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
}
