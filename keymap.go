package rangebar

import "github.com/ayn2op/rangebar/keybind"

// KeyMap holds the keys a focused range bar responds to. The active thumb is
// the one keyboard moves apply to.
type KeyMap struct {
	Decrease    keybind.Keybind
	Increase    keybind.Keybind
	SwitchThumb keybind.Keybind
	First       keybind.Keybind
	Last        keybind.Keybind
}

// DefaultKeyMap returns arrow and vi-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Decrease: keybind.NewKeybind(
			keybind.WithKeys("left", "h"),
			keybind.WithHelp("←/h", "decrease"),
		),
		Increase: keybind.NewKeybind(
			keybind.WithKeys("right", "l"),
			keybind.WithHelp("→/l", "increase"),
		),
		SwitchThumb: keybind.NewKeybind(
			keybind.WithKeys("space", "tab"),
			keybind.WithHelp("space/tab", "switch thumb"),
		),
		First: keybind.NewKeybind(
			keybind.WithKeys("home", "g"),
			keybind.WithHelp("home/g", "first"),
		),
		Last: keybind.NewKeybind(
			keybind.WithKeys("end", "G", "shift+g"),
			keybind.WithHelp("end/G", "last"),
		),
	}
}

// ShortHelp returns the bindings for a single-line help.
func (k KeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Decrease, k.Increase, k.SwitchThumb, k.First, k.Last}
}
