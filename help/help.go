// Package help draws a single line of key help such as
// "←/h decrease • →/l increase • q quit".
package help

import (
	"github.com/ayn2op/rangebar"
	"github.com/ayn2op/rangebar/keybind"
	"github.com/gdamore/tcell/v3"
)

type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
}

type Styles struct {
	KeyStyle       tcell.Style
	DescStyle      tcell.Style
	SeparatorStyle tcell.Style
	EllipsisStyle  tcell.Style
}

func DefaultStyles() Styles {
	dim := tcell.StyleDefault.Dim(true)
	return Styles{
		KeyStyle:       dim,
		DescStyle:      tcell.StyleDefault,
		SeparatorStyle: dim,
		EllipsisStyle:  dim,
	}
}

type Help struct {
	*rangebar.Box
	Styles Styles

	keyMap    KeyMap
	separator string
	ellipsis  string
}

func New() *Help {
	return &Help{
		Box:       rangebar.NewBox(),
		Styles:    DefaultStyles(),
		separator: " • ",
		ellipsis:  rangebar.SemigraphicsHorizontalEllipsis,
	}
}

// SetKeyMap sets the key map used by this help primitive.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	h.MarkDirty()
	return h
}

// SetSeparator sets the separator between two keybinds.
func (h *Help) SetSeparator(separator string) *Help {
	h.separator = separator
	h.MarkDirty()
	return h
}

// SetEllipsis sets the marker appended when not all keybinds fit.
func (h *Help) SetEllipsis(ellipsis string) *Help {
	h.ellipsis = ellipsis
	h.MarkDirty()
	return h
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)
	if h.keyMap == nil {
		return
	}

	x, y, width, height := h.GetInnerRect()
	if height <= 0 {
		return
	}
	for _, s := range h.segments(h.keyMap.ShortHelp(), width) {
		if width <= 0 {
			break
		}
		_, printed := rangebar.PrintWithStyle(screen, s.text, x, y, width, rangebar.AlignmentLeft, s.style)
		x += printed
		width -= printed
	}
}

// Line returns the help for keybinds as plain text, at most maxWidth cells
// wide. A maxWidth of 0 or less means no limit.
func (h *Help) Line(keybinds []keybind.Keybind, maxWidth int) string {
	var line string
	for _, s := range h.segments(keybinds, maxWidth) {
		line += s.text
	}
	return line
}

type segment struct {
	text  string
	style tcell.Style
}

// segments lays out as many keybinds as fit into maxWidth. If some are left
// out, an ellipsis follows when it fits as a whole.
func (h *Help) segments(keybinds []keybind.Keybind, maxWidth int) []segment {
	items := make([][]segment, 0, len(keybinds))
	for _, kb := range keybinds {
		if item := itemSegments(kb, h.Styles); len(item) > 0 {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil
	}

	sepText := h.separator
	if sepText == "" {
		sepText = " "
	}
	sep := segment{text: sepText, style: h.Styles.SeparatorStyle}

	out := append([]segment(nil), items[0]...)
	if maxWidth > 0 && segmentsWidth(out) > maxWidth {
		return nil
	}
	for _, item := range items[1:] {
		candidate := append(append(append([]segment(nil), out...), sep), item...)
		if maxWidth > 0 && segmentsWidth(candidate) > maxWidth {
			return append(out, h.truncationTail(out, maxWidth)...)
		}
		out = candidate
	}
	return out
}

func (h *Help) truncationTail(current []segment, maxWidth int) []segment {
	if h.ellipsis == "" {
		return nil
	}
	// Clipped ellipses look broken in narrow widths.
	tail := []segment{
		{text: " ", style: h.Styles.EllipsisStyle},
		{text: h.ellipsis, style: h.Styles.EllipsisStyle},
	}
	if segmentsWidth(current)+segmentsWidth(tail) <= maxWidth {
		return tail
	}
	return nil
}

func itemSegments(kb keybind.Keybind, styles Styles) []segment {
	help := kb.Help()
	switch {
	case help.Key == "" && help.Desc == "":
		return nil
	case help.Key == "":
		return []segment{{text: help.Desc, style: styles.DescStyle}}
	case help.Desc == "":
		return []segment{{text: help.Key, style: styles.KeyStyle}}
	default:
		return []segment{{text: help.Key, style: styles.KeyStyle}, {text: " ", style: styles.DescStyle}, {text: help.Desc, style: styles.DescStyle}}
	}
}

func segmentsWidth(segments []segment) int {
	width := 0
	for _, s := range segments {
		width += rangebar.StringWidth(s.text)
	}
	return width
}
