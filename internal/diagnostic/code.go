package diagnostic

//go:generate go tool stringer -type=Code -trimprefix=Code -output=code_string.go

// Code identifies a class of failure.
type Code int

const (
	CodeUnknown Code = iota
	CodeMalformedDrawing
	CodePathIdentifierMismatch
	CodeLabelIndexMismatch
	CodeStrokeCountMismatch
	CodeMalformedTransform
	CodeInvalidCodePoint
	CodeDuplicateCharacter
	CodeMalformedRecord
	CodeIO
)
