// internal/fasta/path_ctx.go
package fasta

import (
	"context"
	"errors"
	"io"

	"hexamer/internal/alphabet"
)

// ForEachPathCtx opens path, decodes FASTA with codec and calls emit for
// each record. Cancellation via ctx is honored between records.
//
// onBad decides the policy for a record with a rejected character: return
// nil to skip it and continue, or an error to stop. A nil onBad stops on
// the first bad record, returning the *BadCharError.
func ForEachPathCtx(
	ctx context.Context,
	path string,
	codec *alphabet.Codec,
	emit func(Record) error,
	onBad func(*BadCharError) error,
) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	r := NewReader(rc, codec)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		var bad *BadCharError
		if errors.As(err, &bad) {
			bad.File = path
			if onBad == nil {
				return bad
			}
			if err := onBad(bad); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
}

// ReadAllPath returns every record in path, stopping at the first bad one.
func ReadAllPath(ctx context.Context, path string, codec *alphabet.Codec) ([]Record, error) {
	var recs []Record
	err := ForEachPathCtx(ctx, path, codec, func(r Record) error {
		recs = append(recs, r)
		return nil
	}, nil)
	return recs, err
}
