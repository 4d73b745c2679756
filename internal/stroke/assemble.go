package stroke

import "fmt"

// Assemble pairs paths[i] with labels[i] into one record per stroke.
//
// Both lists must have the same length and carry indexes 1..N in order.
// The drawing parser guarantees the ordering; lists built elsewhere are
// checked again here.
func Assemble(paths []Path, labels []Label) ([]Record, error) {
	if len(paths) != len(labels) {
		return nil, fmt.Errorf("%w: %d paths, %d labels", ErrStrokeCountMismatch, len(paths), len(labels))
	}

	records := make([]Record, 0, len(paths))

	for i := range paths {
		want := i + 1

		if paths[i].Index != want {
			return nil, fmt.Errorf("%w: path at position %d has index %d", ErrPathIndexMismatch, want, paths[i].Index)
		}

		if labels[i].Index != want {
			return nil, fmt.Errorf("%w: label at position %d has index %d", ErrLabelIndexMismatch, want, labels[i].Index)
		}

		records = append(records, Record{
			Index: want,
			Data:  paths[i].Data,
			X:     labels[i].X,
			Y:     labels[i].Y,
			XText: labels[i].XText,
			YText: labels[i].YText,
		})
	}

	return records, nil
}
