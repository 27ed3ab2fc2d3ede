// Package engine scores encoded DNA against a hexamer table and reports
// maximal-scoring segments on both strands and in every reading frame.
//
// Profile builds the running partial sums for one (sequence, offset) pass,
// MaxSegments pairs minima with maxima in that profile, and Engine.Scan
// drives both over frames and strands and maps the hits back onto the
// input coordinates. Nothing here does I/O.
package engine
