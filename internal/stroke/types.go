package stroke

import (
	"strconv"
	"strings"
)

// annotationPrefix starts the label annotation appended to a path description.
const annotationPrefix = 'T'

// Path is one stroke path of a drawing.
type Path struct {
	// Index is the 1-based stroke number declared by the path identifier.
	Index int
	// Data is the raw path description.
	Data string
}

// Label is the number label placed next to a stroke.
type Label struct {
	// Index is the 1-based stroke number written in the label.
	Index int
	X     float64
	Y     float64
	// XText and YText are the coordinates as written in the drawing, if known.
	XText string
	YText string
}

// Record is a path joined with the position of its label.
type Record struct {
	Index int
	Data  string
	X     float64
	Y     float64
	XText string
	YText string
}

// Annotation returns the "T{index},{x},{y}" suffix of the record.
func (r Record) Annotation() string {
	var b strings.Builder

	b.WriteByte(annotationPrefix)
	b.WriteString(strconv.Itoa(r.Index))
	b.WriteByte(',')
	b.WriteString(coordinateText(r.XText, r.X))
	b.WriteByte(',')
	b.WriteString(coordinateText(r.YText, r.Y))

	return b.String()
}

// String returns the stroke descriptor: path description plus annotation.
func (r Record) String() string {
	return r.Data + r.Annotation()
}

// coordinateText prefers the coordinate as written over its formatted value.
func coordinateText(text string, v float64) string {
	if text != "" {
		return text
	}

	return FormatCoordinate(v)
}

// FormatCoordinate formats a label coordinate in its shortest exact form.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Descriptors returns the string form of each record, in order.
func Descriptors(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.String()
	}

	return out
}
