package rangebar

import "github.com/gdamore/tcell/v3"

// Connector is the line drawn between both thumbs.
type Connector struct {
	glyphs lineGlyphs
	color  tcell.Color
}

// NewConnector returns a connector drawn with the given stroke weight and
// color.
func NewConnector(weight float64, color tcell.Color) Connector {
	return Connector{
		glyphs: glyphsForWeight(weight),
		color:  color,
	}
}

// Span returns the first and last column strictly between both handles. The
// span is empty (from > to) when the handles are adjacent or overlap.
func (c Connector) Span(left, right *Handle) (from, to int) {
	return left.column() + 1, right.column() - 1
}

func (c Connector) cells(left, right *Handle, y int, background tcell.Color) []glyphCell {
	from, to := c.Span(left, right)
	if from > to {
		return nil
	}
	style := tcell.StyleDefault.Foreground(c.color).Background(background)
	cells := make([]glyphCell, 0, to-from+1)
	for x := from; x <= to; x++ {
		cells = append(cells, glyphCell{x: x, y: y, glyph: c.glyphs.line, style: style})
	}
	return cells
}
