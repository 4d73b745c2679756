package stroke

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRecord splits a descriptor back into its path description and label
// annotation. The annotation is the last "T" segment of the descriptor.
func ParseRecord(s string) (Record, error) {
	pos := strings.LastIndexByte(s, annotationPrefix)
	if pos < 0 {
		return Record{}, fmt.Errorf("%w: no annotation in %q", ErrMalformedRecord, s)
	}

	fields := strings.Split(s[pos+1:], ",")
	if len(fields) != 3 {
		return Record{}, fmt.Errorf("%w: annotation %q needs 3 fields", ErrMalformedRecord, s[pos:])
	}

	index, err := strconv.Atoi(fields[0])
	if err != nil || index < 1 {
		return Record{}, fmt.Errorf("%w: bad stroke index %q", ErrMalformedRecord, fields[0])
	}

	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: bad x %q", ErrMalformedRecord, fields[1])
	}

	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Record{}, fmt.Errorf("%w: bad y %q", ErrMalformedRecord, fields[2])
	}

	return Record{
		Index: index,
		Data:  s[:pos],
		X:     x,
		Y:     y,
		XText: fields[1],
		YText: fields[2],
	}, nil
}

// ParseRecords decodes a character's descriptors and checks that their
// indexes run 1..N.
func ParseRecords(descriptors []string) ([]Record, error) {
	records := make([]Record, 0, len(descriptors))

	for i, d := range descriptors {
		r, err := ParseRecord(d)
		if err != nil {
			return nil, fmt.Errorf("stroke %d: %w", i+1, err)
		}

		if r.Index != i+1 {
			return nil, fmt.Errorf("%w: stroke %d is annotated as %d", ErrLabelIndexMismatch, i+1, r.Index)
		}

		records = append(records, r)
	}

	return records, nil
}
