// internal/cliutil/cliutil.go
package cliutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals. "-"
// (stdin) passes through and may appear at most once.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	stdin := false
	for _, a := range posArgs {
		if a == "-" {
			if stdin {
				return nil, errors.New("stdin ('-') given more than once")
			}
			stdin = true
			out = append(out, a)
			continue
		}
		if hasGlobMeta(a) {
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, fmt.Errorf("bad glob %q: %w", a, err)
			}
			if len(m) == 0 {
				return nil, fmt.Errorf("no input matched %q", a)
			}
			out = append(out, m...)
		} else {
			out = append(out, a)
		}
	}
	return out, nil
}
