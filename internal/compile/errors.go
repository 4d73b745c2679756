package compile

import (
	"errors"
	"io/fs"

	"go.uber.org/multierr"

	"stroke-compiler/internal/codepoint"
	"stroke-compiler/internal/diagnostic"
	"stroke-compiler/internal/drawing"
	"stroke-compiler/internal/stroke"
)

// ErrDuplicateCharacter means two drawing files resolve to the same character.
var ErrDuplicateCharacter = errors.New("duplicate character")

// FileError is a failure to compile one drawing file.
type FileError struct {
	// Name is the drawing filename.
	Name string
	// Code classifies Err.
	Code diagnostic.Code
	Err  error
}

func newFileError(name string, err error) *FileError {
	return &FileError{Name: name, Code: Classify(err), Err: err}
}

func (e *FileError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// classes maps sentinel errors to diagnostic codes, most specific first.
var classes = []struct {
	err  error
	code diagnostic.Code
}{
	{drawing.ErrPathIdentifierMismatch, diagnostic.CodePathIdentifierMismatch},
	{stroke.ErrPathIndexMismatch, diagnostic.CodePathIdentifierMismatch},
	{stroke.ErrLabelIndexMismatch, diagnostic.CodeLabelIndexMismatch},
	{stroke.ErrStrokeCountMismatch, diagnostic.CodeStrokeCountMismatch},
	{drawing.ErrMalformedTransform, diagnostic.CodeMalformedTransform},
	{drawing.ErrMalformedDrawing, diagnostic.CodeMalformedDrawing},
	{codepoint.ErrInvalidCodePoint, diagnostic.CodeInvalidCodePoint},
	{ErrDuplicateCharacter, diagnostic.CodeDuplicateCharacter},
	{stroke.ErrMalformedRecord, diagnostic.CodeMalformedRecord},
}

// Classify returns the diagnostic code of err.
func Classify(err error) diagnostic.Code {
	for _, c := range classes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return diagnostic.CodeIO
	}

	return diagnostic.CodeUnknown
}

// Diagnose converts a compile error into diagnostics, one per failed file.
func Diagnose(err error) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	for _, e := range multierr.Errors(err) {
		var fe *FileError
		if errors.As(e, &fe) {
			d.AddError(fe.Code, fe.Err.Error(), fe.Name, "")
			continue
		}

		d.AddError(Classify(e), e.Error(), "", "")
	}

	return d
}
