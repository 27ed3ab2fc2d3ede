// internal/cmdutil/progress.go
package cmdutil

import (
	"io"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Progress is a stderr spinner counting processed sequences. A nil
// *Progress is valid and does nothing.
type Progress struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

// NewProgress starts a spinner on w labelled with label.
func NewProgress(w io.Writer, label string) *Progress {
	p := mpb.New(mpb.WithWidth(40), mpb.WithOutput(w))
	bar := p.AddSpinner(0,
		mpb.PrependDecorators(
			decor.Name(label, decor.WC{W: len(label) + 1, C: decor.DindentRight}),
			decor.CurrentNoUnit("%d seqs", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Elapsed(decor.ET_STYLE_GO),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return &Progress{p: p, bar: bar}
}

// Increment records one finished sequence.
func (pr *Progress) Increment() {
	if pr == nil {
		return
	}
	pr.bar.Increment()
}

// Done completes the spinner and waits for the final render.
func (pr *Progress) Done() {
	if pr == nil {
		return
	}
	pr.bar.SetTotal(-1, true)
	pr.p.Wait()
}
