// internal/pipeline/sim.go
package pipeline

import "hexamer/internal/engine"

// Scanner is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Scanner interface {
	Scan(id string, seq []byte) engine.Result
}
