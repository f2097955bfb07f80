package rangebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// glyphsByColumn returns the glyph drawn last in each column.
func glyphsByColumn(cells []glyphCell) map[int]string {
	glyphs := make(map[int]string, len(cells))
	for _, c := range cells {
		glyphs[c.x] = c.glyph
	}
	return glyphs
}

func TestRangeBarCells(t *testing.T) {
	r := newTestBar(t, 0, 10)
	require.NoError(t, r.SetThumbIndices(3, 6))

	cells := r.cells()
	for _, c := range cells {
		assert.Equal(t, 1, c.y)
	}
	assert.Len(t, cells, 41+11+2)

	glyphs := glyphsByColumn(cells)
	assert.Equal(t, GeometricBlackCircle, glyphs[12])
	assert.Equal(t, GeometricBlackCircle, glyphs[24])
	for x := 13; x <= 23; x++ {
		assert.Equal(t, BoxDrawingsHeavyHorizontal, glyphs[x], "connector at %d", x)
	}
	assert.Equal(t, BoxDrawingsLightDownAndHorizontal, glyphs[0])
	assert.Equal(t, BoxDrawingsLightHorizontal, glyphs[1])
	assert.Equal(t, BoxDrawingsLightDownAndHorizontal, glyphs[28])
	assert.Equal(t, BoxDrawingsLightDownAndHorizontal, glyphs[40])

	// The active thumb is drawn last.
	assert.Equal(t, 12, cells[len(cells)-1].x)
}

func TestRangeBarCellsHideDenseTicks(t *testing.T) {
	r := newTestBar(t, 0, 100)
	require.NoError(t, r.SetThumbIndices(0, 0))

	glyphs := glyphsByColumn(r.cells())
	assert.Equal(t, BoxDrawingsLightHorizontal, glyphs[20])

	r.SetShowTicks(false)
	require.NoError(t, r.SetBounds(0, 10))
	glyphs = glyphsByColumn(r.cells())
	assert.Equal(t, BoxDrawingsLightHorizontal, glyphs[4])
}

func TestRangeBarCellsPressedThumb(t *testing.T) {
	r := newTestBar(t, 0, 10)

	r.pointerDown(40, 1)
	glyphs := glyphsByColumn(r.cells())
	assert.Equal(t, GeometricFisheye, glyphs[40])
	assert.Equal(t, GeometricBlackCircle, glyphs[0])
}

func TestConnectorSpan(t *testing.T) {
	c := NewConnector(1, 0)
	left, right := NewHandle(4, 0, 0, 1), NewHandle(5, 0, 0, 1)

	from, to := c.Span(&left, &right)
	assert.Greater(t, from, to)
	assert.Empty(t, c.cells(&left, &right, 0, 0))

	right.SetPosition(9)
	assert.Len(t, c.cells(&left, &right, 0, 0), 4)
}

func TestRangeBarLabels(t *testing.T) {
	r := newTestBar(t, 0, 10)
	require.NoError(t, r.SetThumbIndices(2, 9))

	assert.Equal(t, []label{{x: 8, text: "2"}, {x: 36, text: "9"}}, r.labels(0, 40))

	require.NoError(t, r.SetThumbIndices(9, 10))
	assert.Equal(t, []label{{x: 36, text: "9"}, {x: 39, text: "10"}}, r.labels(0, 40))

	require.NoError(t, r.SetThumbIndices(10, 10))
	assert.Equal(t, []label{{x: 39, text: "10"}}, r.labels(0, 40))
}

func TestRangeBarLabelsMerge(t *testing.T) {
	r := newTestBar(t, 0, 20)
	require.NoError(t, r.SetThumbIndices(10, 11))

	assert.Equal(t, []label{{x: 19, text: "10-11"}}, r.labels(0, 40))
}
