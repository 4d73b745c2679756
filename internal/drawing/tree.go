package drawing

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// SVGNamespace is the namespace of the elements Parse visits.
const SVGNamespace = "http://www.w3.org/2000/svg"

// Element is a node of a parsed drawing.
type Element struct {
	Name     xml.Name
	Attr     []xml.Attr
	Children []*Element

	text strings.Builder
}

// Text returns the character data before the element's first child.
func (e *Element) Text() string {
	return e.text.String()
}

// Attribute returns the value of an unqualified attribute.
func (e *Element) Attribute(local string) (string, bool) {
	for _, a := range e.Attr {
		if a.Name.Space == "" && a.Name.Local == local {
			return a.Value, true
		}
	}

	return "", false
}

// Is reports whether the element is the SVG element with the given local name.
func (e *Element) Is(local string) bool {
	return e.Name.Space == SVGNamespace && e.Name.Local == local
}

// Walk visits e and its descendants in document order.
// Walking stops at the first error returned by fn.
func (e *Element) Walk(fn func(*Element) error) error {
	if err := fn(e); err != nil {
		return err
	}

	for _, c := range e.Children {
		if err := c.Walk(fn); err != nil {
			return err
		}
	}

	return nil
}

// ParseTree reads an XML document into an element tree rooted at its
// document element.
func ParseTree(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var (
		root  *Element
		stack []*Element
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedDrawing, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name, Attr: t.Copy().Attr}

			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: more than one document element", ErrMalformedDrawing)
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}

			stack = append(stack, el)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				if el := stack[len(stack)-1]; len(el.Children) == 0 {
					el.text.Write(t)
				}
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no document element", ErrMalformedDrawing)
	}

	return root, nil
}
