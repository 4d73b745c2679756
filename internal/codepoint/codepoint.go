package codepoint

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf16"
)

// UTF-16 boundaries.
const (
	surrogateMin  = 0xD800
	surrogateMax  = 0xE000 // exclusive
	lowSurrogate  = 0xDC00
	supplementary = 0x10000
	maxCodePoint  = 0x10FFFF
	tenBitMask    = 0x3FF
)

// ErrInvalidCodePoint is returned for values that cannot name a character.
var ErrInvalidCodePoint = errors.New("invalid code point")

// Identity is a resolved character.
type Identity struct {
	// CodePoint is the numeric identity taken from the filename.
	CodePoint int
	// Units is the UTF-16 encoding: one unit inside the BMP, a surrogate pair outside.
	Units []uint16
	// Text is the character as a Go string.
	Text string
}

// IsSupplementary reports whether the identity needed a surrogate pair.
func (id Identity) IsSupplementary() bool {
	return len(id.Units) == 2
}

// String returns the character text.
func (id Identity) String() string {
	return id.Text
}

// Resolve returns the Identity for a code point.
// Negative values, the surrogate band [0xD800, 0xE000) and values above
// 0x10FFFF fail with ErrInvalidCodePoint.
func Resolve(cp int) (Identity, error) {
	units, err := Units(cp)
	if err != nil {
		return Identity{}, err
	}

	return Identity{
		CodePoint: cp,
		Units:     units,
		Text:      string(utf16.Decode(units)),
	}, nil
}

// Units returns the UTF-16 code units of cp.
func Units(cp int) ([]uint16, error) {
	switch {
	case cp < 0 || cp > maxCodePoint:
		return nil, fmt.Errorf("%w: %#x out of range", ErrInvalidCodePoint, cp)
	case cp >= surrogateMin && cp < surrogateMax:
		return nil, fmt.Errorf("%w: %#x is a surrogate", ErrInvalidCodePoint, cp)
	case cp < supplementary:
		return []uint16{uint16(cp)}, nil
	}

	v := cp - supplementary
	high := uint16((v >> 10) | surrogateMin)
	low := uint16((v & tenBitMask) | lowSurrogate)

	return []uint16{high, low}, nil
}

// ParseHex parses a hexadecimal code point such as "05b66".
func ParseHex(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidCodePoint)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidCodePoint, s)
	}

	return int(v), nil
}
