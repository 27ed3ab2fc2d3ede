// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Warnf prints a WARN line unless quiet.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// Infof prints an INFO line unless quiet.
func Infof(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "INFO: "+format+"\n", a...)
}
