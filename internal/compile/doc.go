// Package compile turns a directory of stroke order drawings into a stroke
// table keyed by character.
//
// Each drawing file is named after the code point of its character, for
// example "05b66.svg". The compiler resolves that code point, parses the
// drawing, pairs its strokes with their labels and inserts the resulting
// stroke records into the table.
//
// Any drawing failure fails the run. By default the run stops at the first
// failing file; with CollectAll every file is processed and all failures are
// returned together. No table is returned from a failed run.
package compile
