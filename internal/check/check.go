// Package check validates a compiled stroke data file the way its reader
// consumes it: every descriptor must carry a readable label annotation and
// the annotations of a character must number its strokes 1..N.
package check

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"stroke-compiler/internal/compile"
	"stroke-compiler/internal/diagnostic"
	"stroke-compiler/internal/stroke"
)

// Result summarizes a checked file.
type Result struct {
	Characters  int
	Strokes     int
	Diagnostics diagnostic.Diagnostics
}

// Decode parses a compiled stroke data file.
func Decode(data []byte) (map[string][]string, error) {
	var table map[string][]string
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decoding stroke data: %w", err)
	}

	return table, nil
}

// CheckFile reads and checks the stroke data file at path.
func CheckFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stroke data %s: %w", path, err)
	}

	res, err := Check(data)
	if err != nil {
		return nil, err
	}

	for i := range res.Diagnostics.Errors {
		res.Diagnostics.Errors[i].File = path
	}
	for i := range res.Diagnostics.Warnings {
		res.Diagnostics.Warnings[i].File = path
	}

	return res, nil
}

// Check validates encoded stroke data.
func Check(data []byte) (*Result, error) {
	table, err := Decode(data)
	if err != nil {
		return nil, err
	}

	characters := make([]string, 0, len(table))
	for k := range table {
		characters = append(characters, k)
	}
	sort.Strings(characters)

	res := &Result{Characters: len(table)}

	for _, character := range characters {
		d, n := checkEntry(character, table[character])
		res.Strokes += n
		res.Diagnostics.Merge(d)
	}

	return res, nil
}

func checkEntry(character string, descriptors []string) (diagnostic.Diagnostics, int) {
	var d diagnostic.Diagnostics

	if utf8.RuneCountInString(character) != 1 {
		d.AddError(diagnostic.CodeInvalidCodePoint, "key is not a single character", "", character)
	}

	if len(descriptors) == 0 {
		d.AddWarning(diagnostic.CodeStrokeCountMismatch, "character has no strokes", "", character)
		return d, 0
	}

	records, err := stroke.ParseRecords(descriptors)
	if err != nil {
		d.AddError(compile.Classify(err), err.Error(), "", character)
		return d, 0
	}

	for _, r := range records {
		if r.Data == "" {
			d.AddWarning(diagnostic.CodeMalformedRecord, fmt.Sprintf("stroke %d has no path data", r.Index), "", character)
		}
	}

	return d, len(records)
}
