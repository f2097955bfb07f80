package main

import (
	"github.com/ayn2op/rangebar"
	"github.com/ayn2op/rangebar/help"
	"github.com/ayn2op/rangebar/keybind"
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

// barHeight is the height of the framed range bar: border, labels, track
// and an empty row.
const barHeight = 5

// keyMap adds the quit key to the keys of the range bar.
type keyMap struct {
	rangebar.KeyMap
	Quit keybind.Keybind
}

func (k keyMap) ShortHelp() []keybind.Keybind {
	return append(k.KeyMap.ShortHelp(), k.Quit)
}

// view lays out a framed range bar with a status line and a help line below
// it.
type view struct {
	*rangebar.Box

	bar    *rangebar.RangeBar
	help   *help.Help
	keyMap keyMap
	status string
}

func newView(bar *rangebar.RangeBar) *view {
	blurred := tcell.StyleDefault.Foreground(color.Gray).Background(color.Black)
	focused := tcell.StyleDefault.Foreground(color.White).Background(color.Black)
	bar.SetBorder(true).
		SetBorderSet(rangebar.BorderSetRound()).
		SetBorderStyle(blurred).
		SetBorderPadding(0, 0, 1, 1).
		SetTitle(" range ").
		SetTitleStyle(tcell.StyleDefault.Foreground(color.Yellow).Bold(true)).
		SetTitleAlignment(rangebar.AlignmentLeft).
		SetFocusFunc(func() { bar.SetBorderStyle(focused) }).
		SetBlurFunc(func() { bar.SetBorderStyle(blurred) })

	keys := keyMap{
		KeyMap: rangebar.DefaultKeyMap(),
		Quit: keybind.NewKeybind(
			keybind.WithKeys("q", "ctrl+c", "esc"),
			keybind.WithHelp("q", "quit"),
		),
	}
	bar.SetKeyMap(keys.KeyMap)

	return &view{
		Box:    rangebar.NewBox(),
		bar:    bar,
		help:   help.New().SetKeyMap(keys),
		keyMap: keys,
	}
}

func (v *view) setStatus(status string) {
	v.status = status
	v.MarkDirty()
}

func (v *view) Draw(screen tcell.Screen) {
	v.DrawForSubclass(screen, v)
	x, y, width, height := v.GetInnerRect()
	if height <= 0 {
		return
	}

	v.bar.SetRect(x, y, width, min(barHeight, height))
	v.bar.Draw(screen)
	if height > barHeight {
		rangebar.Print(screen, v.status, x+1, y+barHeight, width-2, rangebar.AlignmentLeft, color.White)
	}
	if height > barHeight+1 {
		v.help.SetRect(x+1, y+barHeight+1, width-2, 1)
		v.help.Draw(screen)
	}
}

func (v *view) InputHandler(event *tcell.EventKey) rangebar.Command {
	if keybind.Matches(event, v.keyMap.Quit) {
		return rangebar.QuitCommand{}
	}
	return v.bar.InputHandler(event)
}

func (v *view) MouseHandler(action rangebar.MouseAction, event *tcell.EventMouse) (rangebar.Primitive, rangebar.Command) {
	return v.bar.MouseHandler(action, event)
}

func (v *view) Focus(delegate func(p rangebar.Primitive)) {
	delegate(v.bar)
}

func (v *view) HasFocus() bool {
	return v.bar.HasFocus()
}
