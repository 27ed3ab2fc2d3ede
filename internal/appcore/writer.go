// internal/appcore/writer.go
package appcore

import (
	"io"

	"hexamer/internal/engine"
	"hexamer/internal/output"
	"hexamer/internal/writers"
)

// ResultWriterFactory starts a writers.StartResultWriter for one format.
type ResultWriterFactory struct {
	Format  string
	Feature string
	Summary bool
}

func NewResultWriterFactory(format, feature string, summary bool) ResultWriterFactory {
	return ResultWriterFactory{Format: format, Feature: feature, Summary: summary}
}

func (w ResultWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error) {
	return writers.StartResultWriter(out, w.Format, writers.Options{
		Context: output.Context{Feature: w.Feature},
		Summary: w.Summary,
	}, bufSize)
}
