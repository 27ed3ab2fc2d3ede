// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is a tool entry point: argv without the program name, the
// process streams, and the exit code to report.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs fn under a context cancelled by SIGINT/SIGTERM and exits with
// its code. A run interrupted after reporting success still exits 130.
func Main(fn RunFunc) {
	os.Exit(run(fn, os.Args[1:], os.Stdout, os.Stderr, syscall.SIGTERM, os.Interrupt))
}

func run(fn RunFunc, argv []string, stdout, stderr io.Writer, sigs ...os.Signal) int {
	ctx, stop := signal.NotifyContext(context.Background(), sigs...)
	defer stop()

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := fn(ctx, argv, stdout, stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
