package compile

import (
	"fmt"
	"sort"

	"stroke-compiler/internal/stroke"
)

// Table maps characters to their stroke records in drawing order.
type Table struct {
	entries map[string][]stroke.Record
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string][]stroke.Record)}
}

// Insert adds the records of a character. A character can be inserted once.
func (t *Table) Insert(character string, records []stroke.Record) error {
	if _, ok := t.entries[character]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateCharacter, character)
	}

	t.entries[character] = records

	return nil
}

// Get returns the records of a character.
func (t *Table) Get(character string) ([]stroke.Record, bool) {
	records, ok := t.entries[character]
	return records, ok
}

// Len returns the number of characters in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Characters returns the table keys in sorted order.
func (t *Table) Characters() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Descriptors returns the table as character to stroke descriptor strings.
func (t *Table) Descriptors() map[string][]string {
	out := make(map[string][]string, len(t.entries))
	for k, records := range t.entries {
		out[k] = stroke.Descriptors(records)
	}

	return out
}
