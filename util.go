package rangebar

import (
	"github.com/gdamore/tcell/v3"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Print prints text onto the screen into the given box at (x,y,maxWidth,1),
// not exceeding that box. The background already on screen is kept.
//
// Returns the number of bytes of the text printed and the width used.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, color tcell.Color) (int, int) {
	return PrintWithStyle(screen, text, x, y, maxWidth, alignment, tcell.StyleDefault.Foreground(color))
}

// PrintWithStyle works like [Print] but it takes a style instead of just a
// foreground color. If the style's background is the default color, the
// existing screen background is kept.
func PrintWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (printed, printedWidth int) {
	totalWidth, totalHeight := screen.Size()
	if maxWidth <= 0 || len(text) == 0 || y < 0 || y >= totalHeight {
		return 0, 0
	}

	textWidth := StringWidth(text)
	var state *stepState

	// Reduce all alignments to AlignmentLeft.
	switch alignment {
	case AlignmentRight:
		// Chop off characters on the left until it fits.
		for len(text) > 0 && textWidth > maxWidth {
			_, text, state = step(text, state)
			textWidth -= state.Width()
		}
		x, maxWidth = x+maxWidth-textWidth, textWidth
	case AlignmentCenter:
		if textWidth < maxWidth {
			x, maxWidth = x+maxWidth/2-textWidth/2, textWidth
		}
	}

	rightBorder := x + maxWidth
	for len(text) > 0 && x < rightBorder && x < totalWidth {
		var c string
		c, text, state = step(text, state)
		width := state.Width()
		if c == "" || x+width > rightBorder {
			break
		}

		if width > 0 {
			finalStyle := style
			if finalStyle.GetBackground() == tcell.ColorDefault {
				_, existing, _ := screen.Get(x, y)
				finalStyle = finalStyle.Background(existing.GetBackground())
			}
			screen.Put(x, y, c, finalStyle)
			for offset := 1; offset < width; offset++ {
				screen.Put(x+offset, y, " ", finalStyle)
			}
		}

		x += width
		printed += state.GrossLength()
		printedWidth += width
	}

	return printed, printedWidth
}
