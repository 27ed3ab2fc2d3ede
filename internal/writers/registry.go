// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"hexamer/internal/engine"
	"hexamer/internal/output"
)

// Options selects what a result writer prints.
type Options struct {
	Context output.Context
	Summary bool // one row per sequence instead of one per segment
}

// StreamFunc drains in and writes every result to w. It must keep
// reading in until it is closed, even after a write error.
type StreamFunc func(w io.Writer, in <-chan engine.Result, opt Options) error

// Result writer registry (format → handler). Register in init() blocks.
var resultWriters = map[string]StreamFunc{}

// Register adds or replaces the handler for format.
func Register(format string, fn StreamFunc) { resultWriters[format] = fn }

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(resultWriters))
	for f := range resultWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func lookup(format string) (StreamFunc, error) {
	fn, ok := resultWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn, nil
}
