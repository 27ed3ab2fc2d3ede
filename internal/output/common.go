// internal/output/common.go
package output

// Source is the GFF source column for every segment line.
const Source = "hexamer"

// Context carries the per-run labels a report needs. It is passed
// explicitly to each formatter.
type Context struct {
	Feature string // GFF feature column, usually the table name
}
