package rangebar

import (
	"io"
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// The size a range bar asks for when nothing constrains it.
const (
	DefaultWidth  = 50
	DefaultHeight = 3
)

// IndexValidation selects how out-of-range thumb indices are treated.
type IndexValidation int

const (
	// IndexValidationClamp repairs out-of-range indices by clamping them to
	// the nearest bound.
	IndexValidationClamp IndexValidation = iota
	// IndexValidationStrict rejects out-of-range indices with
	// ErrIndexOutOfRange.
	IndexValidationStrict
)

func (v IndexValidation) String() string {
	switch v {
	case IndexValidationClamp:
		return "clamp"
	case IndexValidationStrict:
		return "strict"
	}
	return "unknown"
}

// ParseIndexValidation returns the policy with the given name, "clamp" or
// "strict".
func ParseIndexValidation(name string) (IndexValidation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "clamp", "":
		return IndexValidationClamp, nil
	case "strict":
		return IndexValidationStrict, nil
	}
	return IndexValidationClamp, errors.Wrapf(ErrInvalidConfig, "unknown index validation %q", name)
}

// Config holds everything a range bar is constructed from. The zero value is
// not usable; start from DefaultConfig.
type Config struct {
	// The addressable index range. There is one step per unit between them.
	MinValue int
	MaxValue int

	// The underlying bar.
	BarWeight float64
	BarColor  tcell.Color

	// The line between both thumbs.
	ConnectingLineWeight float64
	ConnectingLineColor  tcell.Color

	// The thumbs. MinTouchRadius is the smallest area around a thumb that
	// accepts presses, regardless of ThumbRadius.
	ThumbRadius       float64
	MinTouchRadius    float64
	ThumbColor        tcell.Color
	ThumbPressedColor tcell.Color

	IndexValidation IndexValidation

	// Whether to draw tick marks on the bar and index labels above the thumbs.
	ShowTicks  bool
	ShowLabels bool

	Theme Theme
}

// DefaultConfig returns a configuration with three ticks.
func DefaultConfig() Config {
	return Config{
		MinValue:             0,
		MaxValue:             2,
		BarWeight:            2,
		BarColor:             color.Silver,
		ConnectingLineWeight: 4,
		ConnectingLineColor:  color.Aqua,
		ThumbRadius:          1,
		MinTouchRadius:       1,
		ThumbColor:           color.Aqua,
		ThumbPressedColor:    color.White,
		IndexValidation:      IndexValidationClamp,
		ShowTicks:            true,
		Theme:                DefaultTheme(),
	}
}

// WithTickCount returns a copy of c addressing ticks 0 to count-1.
func (c Config) WithTickCount(count int) Config {
	c.MinValue = 0
	c.MaxValue = count - 1
	return c
}

// Validate checks whether a range bar can be built from c.
func (c Config) Validate() error {
	if err := checkBounds(c.MinValue, c.MaxValue); err != nil {
		return err
	}
	sizes := []struct {
		name string
		size float64
	}{
		{"bar weight", c.BarWeight},
		{"connecting line weight", c.ConnectingLineWeight},
		{"thumb radius", c.ThumbRadius},
		{"minimum touch radius", c.MinTouchRadius},
	}
	for _, s := range sizes {
		if err := checkSize(s.name, s.size); err != nil {
			return err
		}
	}
	if c.IndexValidation != IndexValidationClamp && c.IndexValidation != IndexValidationStrict {
		return errors.Wrapf(ErrInvalidConfig, "unknown index validation %d", c.IndexValidation)
	}
	return nil
}

// fileConfig is the YAML shape of a Config. Unset fields keep their default.
type fileConfig struct {
	MinValue             *int     `yaml:"min_value"`
	MaxValue             *int     `yaml:"max_value"`
	TickCount            *int     `yaml:"tick_count"`
	BarWeight            *float64 `yaml:"bar_weight"`
	BarColor             string   `yaml:"bar_color"`
	ConnectingLineWeight *float64 `yaml:"connecting_line_weight"`
	ConnectingLineColor  string   `yaml:"connecting_line_color"`
	IndicatorRadius      *float64 `yaml:"indicator_radius"`
	IndicatorColor       string   `yaml:"indicator_color"`
	IndicatorPressed     string   `yaml:"indicator_pressed_color"`
	MinTouchRadius       *float64 `yaml:"min_touch_radius"`
	IndexValidation      string   `yaml:"index_validation"`
	ShowTicks            *bool    `yaml:"show_ticks"`
	ShowLabels           *bool    `yaml:"show_labels"`
	Theme                struct {
		Background string `yaml:"background"`
		Border     string `yaml:"border"`
		Title      string `yaml:"title"`
		Label      string `yaml:"label"`
	} `yaml:"theme"`
}

// LoadConfig reads a YAML configuration from r on top of DefaultConfig. An
// empty document yields the defaults. The result is validated.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	var fc fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decode config")
	}

	if fc.TickCount != nil {
		if fc.MinValue != nil || fc.MaxValue != nil {
			return Config{}, errors.Wrap(ErrInvalidConfig, "tick_count cannot be combined with min_value or max_value")
		}
		cfg = cfg.WithTickCount(*fc.TickCount)
	}
	setInt(&cfg.MinValue, fc.MinValue)
	setInt(&cfg.MaxValue, fc.MaxValue)
	setFloat(&cfg.BarWeight, fc.BarWeight)
	setFloat(&cfg.ConnectingLineWeight, fc.ConnectingLineWeight)
	setFloat(&cfg.ThumbRadius, fc.IndicatorRadius)
	setFloat(&cfg.MinTouchRadius, fc.MinTouchRadius)
	if fc.ShowTicks != nil {
		cfg.ShowTicks = *fc.ShowTicks
	}
	if fc.ShowLabels != nil {
		cfg.ShowLabels = *fc.ShowLabels
	}

	if fc.IndexValidation != "" {
		v, err := ParseIndexValidation(fc.IndexValidation)
		if err != nil {
			return Config{}, err
		}
		cfg.IndexValidation = v
	}

	for _, c := range []struct {
		name string
		dst  *tcell.Color
	}{
		{fc.BarColor, &cfg.BarColor},
		{fc.ConnectingLineColor, &cfg.ConnectingLineColor},
		{fc.IndicatorColor, &cfg.ThumbColor},
		{fc.IndicatorPressed, &cfg.ThumbPressedColor},
		{fc.Theme.Background, &cfg.Theme.BackgroundColor},
		{fc.Theme.Border, &cfg.Theme.BorderColor},
		{fc.Theme.Title, &cfg.Theme.TitleColor},
		{fc.Theme.Label, &cfg.Theme.LabelColor},
	} {
		if c.name == "" {
			continue
		}
		parsed, err := ParseColor(c.name)
		if err != nil {
			return Config{}, err
		}
		*c.dst = parsed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
