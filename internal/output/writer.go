// Package output serializes a compiled stroke table to JSON.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"stroke-compiler/internal/codepoint"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Format controls the JSON layout.
type Format struct {
	// Indent is the number of spaces per nesting level; 0 writes compact JSON.
	Indent int
	// ASCII writes every non-ASCII character as a \u escape, using a
	// surrogate pair outside the Basic Multilingual Plane.
	ASCII bool
}

// DefaultFormat matches the layout of the published stroke data file.
func DefaultFormat() Format {
	return Format{Indent: 2, ASCII: true}
}

// Marshal encodes a character to descriptor table as a JSON object with
// sorted keys and a trailing newline.
func Marshal(table map[string][]string, format Format) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if format.Indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", format.Indent))
	}

	if err := enc.Encode(table); err != nil {
		return nil, fmt.Errorf("encoding stroke table: %w", err)
	}

	if !format.ASCII {
		return buf.Bytes(), nil
	}

	return escapeNonASCII(buf.Bytes())
}

// escapeNonASCII rewrites every non-ASCII rune of an encoded JSON document
// as \u escapes. Non-ASCII runes only occur inside JSON strings, where the
// escape is equivalent.
func escapeNonASCII(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r < utf8.RuneSelf {
			out = append(out, data[0])
			data = data[1:]
			continue
		}

		units, err := codepoint.Units(int(r))
		if err != nil {
			return nil, fmt.Errorf("escaping %U: %w", r, err)
		}

		for _, u := range units {
			out = append(out, `\u`...)
			out = appendHex4(out, u)
		}

		data = data[size:]
	}

	return out, nil
}

func appendHex4(b []byte, u uint16) []byte {
	s := strconv.FormatUint(uint64(u), 16)
	for i := len(s); i < 4; i++ {
		b = append(b, '0')
	}

	return append(b, s...)
}

// WriteFile writes the encoded table to path. The file is written next to
// its destination and renamed into place, so a failed write leaves any
// previous file untouched.
func WriteFile(table map[string][]string, format Format, path string) error {
	data, err := Marshal(table, format)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)

	err = os.MkdirAll(dir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	if err := os.Chmod(tmpName, filePerm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}
