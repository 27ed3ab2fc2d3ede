// Package pipeline streams FASTA records through a Scanner on a pool of
// workers and hands results to a visit callback in input order.
//
// The only contract to implement is Scanner (Scan).
// This keeps the pipeline swappable and testable.
package pipeline
