package rangebar

import (
	"math"
	"strconv"

	"github.com/gdamore/tcell/v3"
)

// glyphCell is one screen cell of a range bar.
type glyphCell struct {
	x, y  int
	glyph string
	style tcell.Style
}

// cells returns the cells of the track row in drawing order: the bar with its
// ticks, then the connector, then both thumbs. The range bar must be laid out.
func (r *RangeBar) cells() []glyphCell {
	y := int(r.thumbs[0].CenterY())
	background := r.GetBackgroundColor()
	from := int(math.Round(r.track.LeftEdge()))
	to := int(math.Round(r.track.RightEdge()))

	bar := glyphsForWeight(r.cfg.BarWeight)
	barStyle := tcell.StyleDefault.Foreground(r.cfg.BarColor).Background(background)
	if r.disabled {
		barStyle = barStyle.Dim(true)
	}
	ticks := r.tickColumns()

	cells := make([]glyphCell, 0, to-from+1)
	for x := from; x <= to; x++ {
		glyph := bar.line
		if ticks[x] {
			glyph = bar.tick
		}
		cells = append(cells, glyphCell{x: x, y: y, glyph: glyph, style: barStyle})
	}

	connector := NewConnector(r.cfg.ConnectingLineWeight, r.cfg.ConnectingLineColor)
	cells = append(cells, connector.cells(&r.thumbs[0], &r.thumbs[1], y, background)...)

	// The active thumb goes last so it stays visible when both overlap.
	order := [2]int{1 - r.active, r.active}
	for _, slot := range order {
		cells = append(cells, r.thumbCell(slot, y, background))
	}
	return cells
}

func (r *RangeBar) thumbCell(slot, y int, background tcell.Color) glyphCell {
	thumb := &r.thumbs[slot]
	glyph := GeometricBlackCircle
	style := tcell.StyleDefault.Foreground(r.cfg.ThumbColor).Background(background)
	switch {
	case thumb.Pressed():
		glyph = GeometricFisheye
		style = style.Foreground(r.cfg.ThumbPressedColor)
	case r.HasFocus() && slot == r.active:
		glyph = GeometricBlackDiamond
		style = style.Bold(true)
	}
	if r.disabled {
		style = style.Dim(true)
	}
	return glyphCell{x: thumb.column(), y: y, glyph: glyph, style: style}
}

// tickColumns returns the columns carrying a tick mark. Ticks are left out
// when they would be closer than two cells apart.
func (r *RangeBar) tickColumns() map[int]bool {
	if !r.cfg.ShowTicks || r.track.StepDistance() < 2 {
		return nil
	}
	ticks := make(map[int]bool, r.track.StepCount()+1)
	for i := 0; i <= r.track.StepCount(); i++ {
		ticks[int(math.Round(r.track.StepCoordinate(i)))] = true
	}
	return ticks
}

// label is a piece of text printed on the row above the track.
type label struct {
	x    int
	text string
}

// labels returns the index labels centered above the thumbs, kept within the
// columns [minX, maxX]. Labels that would touch are merged into one.
func (r *RangeBar) labels(minX, maxX int) []label {
	place := func(center int, text string) label {
		width := StringWidth(text)
		x := center - width/2
		x = max(min(x, maxX-width+1), minX)
		return label{x: x, text: text}
	}

	left := place(r.thumbs[0].column(), strconv.Itoa(r.leftIndex))
	right := place(r.thumbs[1].column(), strconv.Itoa(r.rightIndex))
	if r.leftIndex == r.rightIndex {
		return []label{left}
	}
	if left.x+StringWidth(left.text) >= right.x {
		center := (r.thumbs[0].column() + r.thumbs[1].column()) / 2
		return []label{place(center, strconv.Itoa(r.leftIndex)+"-"+strconv.Itoa(r.rightIndex))}
	}
	return []label{left, right}
}

func (r *RangeBar) drawLabels(screen tcell.Screen) {
	x, y, width, _ := r.GetInnerRect()
	row := int(r.thumbs[0].CenterY()) - 1
	if row < y {
		return
	}
	style := tcell.StyleDefault.Foreground(r.cfg.Theme.LabelColor)
	for _, l := range r.labels(x, x+width-1) {
		PrintWithStyle(screen, l.text, l.x, row, x+width-l.x, AlignmentLeft, style)
	}
}
