// Package drawing reads per-character stroke order drawings.
//
// A drawing is an SVG document. Its path elements are the strokes, identified
// as "kvg:{basename}-s{n}", and its text elements are the stroke number labels,
// positioned by a matrix transform. Parse walks the document once in document
// order and returns both sequences, checking that each runs 1..N:
//
//	tree, err := drawing.ParseTree(f)
//	d, err := drawing.Parse("05b66", tree)
//	records, err := stroke.Assemble(d.Paths, d.Labels)
//
// Parse does not look inside path descriptions.
package drawing
