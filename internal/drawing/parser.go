package drawing

import (
	"fmt"
	"strconv"
	"strings"

	"stroke-compiler/internal/stroke"
)

// Drawing holds the strokes and labels of one character, in document order.
type Drawing struct {
	Basename string
	Paths    []stroke.Path
	Labels   []stroke.Label
}

// Records pairs the drawing's paths and labels.
func (d *Drawing) Records() ([]stroke.Record, error) {
	return stroke.Assemble(d.Paths, d.Labels)
}

// PathID returns the identifier the n-th path of basename must carry.
func PathID(basename string, n int) string {
	return "kvg:" + basename + "-s" + strconv.Itoa(n)
}

// Parse extracts the stroke paths and labels of the drawing rooted at root.
//
// The n-th path element must be identified PathID(basename, n), and the n-th
// text element must contain the number n. Path and label counts are not
// compared; that is left to stroke.Assemble.
func Parse(basename string, root *Element) (*Drawing, error) {
	d := &Drawing{Basename: basename}

	err := root.Walk(func(el *Element) error {
		switch {
		case el.Is("path"):
			p, err := parsePath(basename, len(d.Paths)+1, el)
			if err != nil {
				return err
			}
			d.Paths = append(d.Paths, p)

		case el.Is("text"):
			l, err := parseLabel(len(d.Labels)+1, el)
			if err != nil {
				return err
			}
			d.Labels = append(d.Labels, l)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return d, nil
}

func parsePath(basename string, n int, el *Element) (stroke.Path, error) {
	want := PathID(basename, n)

	id, _ := el.Attribute("id")
	if id != want {
		return stroke.Path{}, fmt.Errorf("%w: path %d has id %q, want %q", ErrPathIdentifierMismatch, n, id, want)
	}

	data, ok := el.Attribute("d")
	if !ok {
		return stroke.Path{}, fmt.Errorf("%w: path %q has no d attribute", ErrMalformedDrawing, id)
	}

	return stroke.Path{Index: n, Data: data}, nil
}

func parseLabel(n int, el *Element) (stroke.Label, error) {
	transform, ok := el.Attribute("transform")
	if !ok {
		return stroke.Label{}, fmt.Errorf("%w: label %d has no transform", ErrMalformedTransform, n)
	}

	t, err := ParseTranslation(transform)
	if err != nil {
		return stroke.Label{}, fmt.Errorf("label %d: %w", n, err)
	}

	text := strings.TrimSpace(el.Text())
	if text != strconv.Itoa(n) {
		return stroke.Label{}, fmt.Errorf("%w: label %d reads %q", ErrLabelIndexMismatch, n, text)
	}

	return stroke.Label{Index: n, X: t.X, Y: t.Y, XText: t.XText, YText: t.YText}, nil
}
