package drawing

import (
	"errors"

	"stroke-compiler/internal/stroke"
)

var (
	// ErrMalformedDrawing means the content is not a readable drawing.
	ErrMalformedDrawing = errors.New("malformed drawing")
	// ErrPathIdentifierMismatch means a path identifier does not match its position.
	ErrPathIdentifierMismatch = errors.New("path identifier mismatch")
	// ErrMalformedTransform means a label transform is not a matrix(...) expression.
	ErrMalformedTransform = errors.New("malformed transform")
)

// ErrLabelIndexMismatch means a label's text does not match its position.
// It is the same error the assembler reports for out of order labels.
var ErrLabelIndexMismatch = stroke.ErrLabelIndexMismatch
