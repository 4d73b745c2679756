package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeString(t *testing.T) {
	assert.Equal(t, "MalformedDrawing", CodeMalformedDrawing.String())
	assert.Equal(t, "PathIdentifierMismatch", CodePathIdentifierMismatch.String())
	assert.Equal(t, "IO", CodeIO.String())
	assert.Equal(t, "Code(42)", Code(42).String())
}

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddError(CodeStrokeCountMismatch, "3 paths, 2 labels", "b.svg", "")
	d.AddError(CodeLabelIndexMismatch, "label 2 reads \"3\"", "a.svg", "")
	d.AddWarning(CodeUnknown, "skipped", "", "")

	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())

	d.Sort()
	require.Len(t, d.Errors, 2)
	assert.Equal(t, "a.svg", d.Errors[0].File)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		`a.svg: [LabelIndexMismatch] label 2 reads "3"; b.svg: [StrokeCountMismatch] 3 paths, 2 labels`,
		err.Error())

	assert.Equal(t, map[Code]int{CodeStrokeCountMismatch: 1, CodeLabelIndexMismatch: 1}, d.Counts())
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics
	a.AddError(CodeIO, "boom", "x.svg", "")
	b.AddWarning(CodeMalformedRecord, "odd", "out.json", "一")

	a.Merge(b)
	assert.Len(t, a.Errors, 1)
	require.Len(t, a.Warnings, 1)
	assert.Equal(t, "out.json (一): [MalformedRecord] odd", a.Warnings[0].String())
}

func TestReport(t *testing.T) {
	var d Diagnostics
	d.AddWarning(CodeUnknown, "w", "", "")
	d.AddError(CodeIO, "e", "f", "")

	assert.Equal(t, "error: f: [IO] e\nwarning: w\n", d.Report())
}
