// Package keybind matches tcell key events against configurable key names
// such as "left", "shift+tab" or "ctrl+a".
package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v3"
)

// Keybind is a set of key names bound to one action, with its help text.
type Keybind struct {
	keys []string
	help Help
}

// Help describes a keybind for display.
type Help struct {
	Key  string
	Desc string
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	k := &Keybind{}
	for _, option := range options {
		option(k)
	}
	return *k
}

// WithKeys binds the given key names. Names are normalized, so "Ctrl+A" and
// "ctrl-a" are the same key.
func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.keys = normalizeKeys(keys)
	}
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.help = Help{Key: key, Desc: desc}
	}
}

func (k Keybind) Keys() []string {
	return k.keys
}

func (k Keybind) Help() Help {
	return k.help
}

// Matches reports whether event triggers any of the keybinds.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	return MatchesName(eventKeyString(event), keybinds...)
}

// MatchesName reports whether the key name triggers any of the keybinds.
func MatchesName(name string, keybinds ...Keybind) bool {
	name = normalizeKey(name)
	if name == "" {
		return false
	}
	for _, keybind := range keybinds {
		if slices.Contains(keybind.keys, name) {
			return true
		}
	}
	return false
}

func normalizeKeys(keys []string) []string {
	normalized := make([]string, 0, len(keys))
	for _, key := range keys {
		if key = normalizeKey(key); key != "" {
			normalized = append(normalized, key)
		}
	}
	return normalized
}

// modifierOrder is the order modifiers appear in normalized key names.
var modifierOrder = []string{"ctrl", "alt", "shift", "meta"}

func normalizeKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if k := strings.ToLower(key); strings.HasPrefix(k, "ctrl-") && len(k) > len("ctrl-") {
		key = "ctrl+" + key[len("ctrl-"):]
	}

	mods := make(map[string]bool, len(modifierOrder))
	primary := ""
	for _, part := range strings.Split(key, "+") {
		part = strings.TrimSpace(part)
		switch strings.ToLower(part) {
		case "":
		case "ctrl", "control":
			mods["ctrl"] = true
		case "alt":
			mods["alt"] = true
		case "shift":
			mods["shift"] = true
		case "meta":
			mods["meta"] = true
		default:
			primary = normalizePrimaryKey(part)
		}
	}
	if primary == "" {
		return ""
	}
	if primary == "backtab" {
		mods["shift"] = true
		primary = "tab"
	}
	if len(mods) > 0 && len([]rune(primary)) == 1 {
		primary = strings.ToLower(primary)
	}

	parts := make([]string, 0, len(mods)+1)
	for _, mod := range modifierOrder {
		if mods[mod] {
			parts = append(parts, mod)
		}
	}
	return strings.Join(append(parts, primary), "+")
}

func normalizePrimaryKey(key string) string {
	if strings.HasPrefix(key, "Rune[") && strings.HasSuffix(key, "]") && len(key) >= 7 {
		return key[5 : len(key)-1]
	}
	if len([]rune(key)) == 1 {
		return key
	}

	switch key = strings.ToLower(key); key {
	case "esc", "escape":
		return "esc"
	case "return":
		return "enter"
	case "pageup":
		return "pgup"
	case "pagedown":
		return "pgdn"
	}
	return key
}

func eventKeyString(event *tcell.EventKey) string {
	key := event.Key()
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	}

	primary := keyName(key)
	if primary == "" && key == tcell.KeyRune {
		primary = event.Str()
		if primary == " " {
			primary = "space"
		}
	}
	if primary == "" {
		return normalizeKey(event.Name())
	}

	var mods []string
	for _, m := range []struct {
		mask tcell.ModMask
		name string
	}{
		{tcell.ModCtrl, "ctrl"},
		{tcell.ModAlt, "alt"},
		{tcell.ModShift, "shift"},
		{tcell.ModMeta, "meta"},
	} {
		if event.Modifiers()&m.mask != 0 {
			mods = append(mods, m.name)
		}
	}
	return normalizeKey(strings.Join(append(mods, primary), "+"))
}

func keyName(key tcell.Key) string {
	switch key {
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBacktab:
		return "shift+tab"
	case tcell.KeyHome:
		return "home"
	case tcell.KeyEnd:
		return "end"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyPgUp:
		return "pgup"
	case tcell.KeyPgDn:
		return "pgdn"
	default:
		return ""
	}
}
