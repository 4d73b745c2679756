package stroke

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threePaths() []Path {
	return []Path{
		{Index: 1, Data: "M21.5,27.5c2.5,1,5.5,0.75,8-0.5"},
		{Index: 2, Data: "M52.5,18.5c0.13,1.25-0.06,2.5-0.5,3.5"},
		{Index: 3, Data: "M14.25,50.25c3.5,0.75,7.5,0.5,11-0.25"},
	}
}

func threeLabels() []Label {
	return []Label{
		{Index: 1, X: 14.5, Y: 28.63},
		{Index: 2, X: 44.5, Y: 15.5},
		{Index: 3, X: 7, Y: -3},
	}
}

func TestAssemble(t *testing.T) {
	records, err := Assemble(threePaths(), threeLabels())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"M21.5,27.5c2.5,1,5.5,0.75,8-0.5T1,14.5,28.63",
		"M52.5,18.5c0.13,1.25-0.06,2.5-0.5,3.5T2,44.5,15.5",
		"M14.25,50.25c3.5,0.75,7.5,0.5,11-0.25T3,7,-3",
	}, Descriptors(records))

	for i, r := range records {
		assert.Equal(t, i+1, r.Index)
	}
}

func TestAssembleEmpty(t *testing.T) {
	records, err := Assemble(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestAssembleCountMismatch(t *testing.T) {
	_, err := Assemble(threePaths(), threeLabels()[:2])
	require.ErrorIs(t, err, ErrStrokeCountMismatch)
	assert.Contains(t, err.Error(), "3 paths, 2 labels")
}

func TestAssembleIndexMismatch(t *testing.T) {
	t.Run("path", func(t *testing.T) {
		paths := threePaths()
		paths[1].Index = 3

		_, err := Assemble(paths, threeLabels())
		assert.ErrorIs(t, err, ErrPathIndexMismatch)
	})

	t.Run("label", func(t *testing.T) {
		labels := threeLabels()
		labels[2].Index = 2

		_, err := Assemble(threePaths(), labels)
		assert.ErrorIs(t, err, ErrLabelIndexMismatch)
	})
}

func TestFormatCoordinate(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{10, "10"},
		{12.5, "12.5"},
		{-3, "-3"},
		{0.125, "0.125"},
		{28.63, "28.63"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCoordinate(tt.in))
	}
}

func TestAssembleKeepsCoordinateText(t *testing.T) {
	records, err := Assemble(
		[]Path{{Index: 1, Data: "M32.25,16.75c3.28,2.03"}},
		[]Label{{Index: 1, X: 24.5, Y: 18.5, XText: "24.50", YText: "18.50"}},
	)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "T1,24.50,18.50", records[0].Annotation())
	assert.Equal(t, "M32.25,16.75c3.28,2.03T1,24.50,18.50", records[0].String())
}
