package keybind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"left", "left"},
		{" Left ", "left"},
		{"Ctrl+A", "ctrl+a"},
		{"ctrl-a", "ctrl+a"},
		{"control+shift+X", "ctrl+shift+x"},
		{"shift+ctrl+x", "ctrl+shift+x"},
		{"backtab", "shift+tab"},
		{"Escape", "esc"},
		{"return", "enter"},
		{"PageUp", "pgup"},
		{"pagedown", "pgdn"},
		{"Rune[q]", "q"},
		{"Q", "Q"},
		{"", ""},
		{"ctrl+", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeKey(tt.in))
		})
	}
}

func TestNewKeybind(t *testing.T) {
	k := NewKeybind(
		WithKeys("Left", "h", ""),
		WithHelp("←/h", "decrease"),
	)

	assert.Equal(t, []string{"left", "h"}, k.Keys())
	assert.Equal(t, Help{Key: "←/h", Desc: "decrease"}, k.Help())
}

func TestMatchesName(t *testing.T) {
	left := NewKeybind(WithKeys("left", "h"))
	quit := NewKeybind(WithKeys("q", "ctrl+c"))

	assert.True(t, MatchesName("Left", left))
	assert.True(t, MatchesName("h", left, quit))
	assert.True(t, MatchesName("Ctrl+C", left, quit))
	assert.False(t, MatchesName("right", left, quit))
	assert.False(t, MatchesName("", left))
	assert.False(t, Matches(nil, left))
}
