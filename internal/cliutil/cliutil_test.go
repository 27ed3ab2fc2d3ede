package cliutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPositionals(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.fa")
	b := filepath.Join(dir, "b.fa")
	_ = os.WriteFile(a, []byte(">a\nA\n"), 0o644)
	_ = os.WriteFile(b, []byte(">b\nA\n"), 0o644)
	got, err := ExpandPositionals([]string{"-", filepath.Join(dir, "*.fa"), "plain.fa"})
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	want := []string{"-", a, b, "plain.fa"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestExpandPositionalsErrors(t *testing.T) {
	if _, err := ExpandPositionals([]string{filepath.Join(t.TempDir(), "*.none")}); err == nil {
		t.Fatal("expected no-match error")
	}
	if _, err := ExpandPositionals([]string{"-", "-"}); err == nil {
		t.Fatal("expected duplicate stdin error")
	}
}
