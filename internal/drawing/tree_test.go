package drawing

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTreeDocumentOrder(t *testing.T) {
	f, err := os.Open("testdata/05b66.svg")
	require.NoError(t, err)
	defer f.Close()

	root, err := ParseTree(f)
	require.NoError(t, err)
	assert.True(t, root.Is("svg"))

	var names []string
	require.NoError(t, root.Walk(func(el *Element) error {
		if el.Is("path") || el.Is("text") {
			names = append(names, el.Name.Local)
		}
		return nil
	}))

	assert.Equal(t, []string{"path", "path", "path", "text", "text", "text"}, names)
}

func TestParseTreeDoctype(t *testing.T) {
	f, err := os.Open("testdata/04e00.svg")
	require.NoError(t, err)
	defer f.Close()

	root, err := ParseTree(f)
	require.NoError(t, err)
	require.Len(t, root.Children, 2)

	id, ok := root.Children[0].Attribute("id")
	require.True(t, ok)
	assert.Equal(t, "kvg:StrokePaths_04e00", id)
}

func TestParseTreeMalformed(t *testing.T) {
	for _, doc := range []string{
		"",
		"   ",
		"not xml at all",
		`<svg xmlns="http://www.w3.org/2000/svg"><path></svg>`,
		`<svg xmlns="http://www.w3.org/2000/svg">`,
		`<a/><b/>`,
	} {
		_, err := ParseTree(strings.NewReader(doc))
		assert.ErrorIs(t, err, ErrMalformedDrawing, "doc %q", doc)
	}
}

func TestElementTextStopsAtFirstChild(t *testing.T) {
	root, err := ParseTree(strings.NewReader(`<text>1<tspan>2</tspan>0</text>`))
	require.NoError(t, err)

	assert.Equal(t, "1", root.Text())
	require.Len(t, root.Children, 1)
	assert.Equal(t, "2", root.Children[0].Text())
}
