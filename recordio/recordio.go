// Package recordio adapts external record formats into the ordered Record
// sequences consumed by xmlrecord. Adapters decode and validate their own
// input; by the time a record reaches the writer it is already a plain
// tree of maps, lists and scalars, so malformed input surfaces here, never
// in the engine.
package recordio

import (
	xmlrecord "github.com/whyarkadas/optimized-xml-writer"
)

// Scanner is the common shape of a record source, mirroring bufio.Scanner:
//
//	for sc.Scan() {
//		s.WriteRecord(sc.Record(), "item")
//	}
//	if err := sc.Err(); err != nil { ... }
type Scanner interface {
	// Scan advances to the next record. It returns false at end of input
	// or on error; the two are told apart by Err.
	Scan() bool

	// Record returns the record produced by the last successful Scan.
	Record() xmlrecord.Record

	// Err returns the first error encountered, or nil at clean EOF.
	Err() error
}
