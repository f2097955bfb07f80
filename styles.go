package rangebar

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
	"github.com/pkg/errors"
)

// Theme defines the colors of the frame around a range bar.
type Theme struct {
	BackgroundColor tcell.Color // Widget background.
	BorderColor     tcell.Color // Box borders.
	TitleColor      tcell.Color // Box titles.
	LabelColor      tcell.Color // Value labels above the thumbs.
}

// DefaultTheme returns a black background with white frame and yellow labels.
func DefaultTheme() Theme {
	return Theme{
		BackgroundColor: color.Black,
		BorderColor:     color.White,
		TitleColor:      color.White,
		LabelColor:      color.Yellow,
	}
}

// namedColors are the colors configuration files may refer to by name.
var namedColors = map[string]tcell.Color{
	"default": tcell.ColorDefault,
	"black":   color.Black,
	"maroon":  color.Maroon,
	"green":   color.Green,
	"olive":   color.Olive,
	"navy":    color.Navy,
	"purple":  color.Purple,
	"teal":    color.Teal,
	"silver":  color.Silver,
	"gray":    color.Gray,
	"red":     color.Red,
	"lime":    color.Lime,
	"yellow":  color.Yellow,
	"blue":    color.Blue,
	"fuchsia": color.Fuchsia,
	"aqua":    color.Aqua,
	"white":   color.White,
}

// ParseColor returns the color with the given name. Names are case
// insensitive; "grey" is accepted for "gray".
func ParseColor(name string) (tcell.Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "grey" {
		key = "gray"
	}
	c, ok := namedColors[key]
	if !ok {
		return tcell.ColorDefault, errors.Wrapf(ErrInvalidConfig, "unknown color %q", name)
	}
	return c, nil
}
