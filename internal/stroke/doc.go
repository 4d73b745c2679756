// Package stroke pairs the stroke paths and stroke labels recovered from one
// drawing into stroke records.
//
// A record is the path description followed by a positional annotation
// "T{index},{x},{y}" locating the stroke number label. Records are the unit
// stored in the compiled table and read back by ParseRecord.
package stroke
