package drawing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	matrixOpen   = "matrix("
	matrixClose  = ")"
	matrixFields = 6
)

// decimalNumber is the plain decimal number grammar of SVG attributes.
var decimalNumber = regexp.MustCompile(`^[-+]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][-+]?[0-9]+)?$`)

// Translation is the (e, f) part of a matrix transform. XText and YText
// keep the numbers as written in the drawing.
type Translation struct {
	X, Y         float64
	XText, YText string
}

// DecodeTransform returns the translation (e, f) of a "matrix(a b c d e f)"
// transform.
func DecodeTransform(expr string) (x, y float64, err error) {
	t, err := ParseTranslation(expr)
	if err != nil {
		return 0, 0, err
	}

	return t.X, t.Y, nil
}

// ParseTranslation returns the translation of a "matrix(a b c d e f)"
// transform. Numbers may be separated by whitespace, commas, or both.
func ParseTranslation(expr string) (Translation, error) {
	s := strings.TrimSpace(expr)
	if !strings.HasPrefix(s, matrixOpen) || !strings.HasSuffix(s, matrixClose) {
		return Translation{}, fmt.Errorf("%w: %q", ErrMalformedTransform, expr)
	}

	inner := s[len(matrixOpen) : len(s)-len(matrixClose)]

	tokens, values, err := splitNumbers(inner)
	if err != nil {
		return Translation{}, fmt.Errorf("%w: %q: %w", ErrMalformedTransform, expr, err)
	}

	if len(values) != matrixFields {
		return Translation{}, fmt.Errorf("%w: %q has %d numbers, want %d", ErrMalformedTransform, expr, len(values), matrixFields)
	}

	return Translation{
		X:     values[4],
		Y:     values[5],
		XText: tokens[4],
		YText: tokens[5],
	}, nil
}

// splitNumbers parses a comma/whitespace separated number list.
// A comma must sit between two numbers.
func splitNumbers(s string) ([]string, []float64, error) {
	var (
		tokens []string
		values []float64
		comma  bool
	)

	for _, tok := range strings.Fields(strings.ReplaceAll(s, ",", " , ")) {
		if tok == "," {
			if len(values) == 0 || comma {
				return nil, nil, fmt.Errorf("misplaced comma in %q", s)
			}
			comma = true
			continue
		}

		if !decimalNumber.MatchString(tok) {
			return nil, nil, fmt.Errorf("bad number %q", tok)
		}

		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("bad number %q", tok)
		}

		tokens = append(tokens, tok)
		values = append(values, v)
		comma = false
	}

	if comma {
		return nil, nil, fmt.Errorf("trailing comma in %q", s)
	}

	return tokens, values, nil
}
