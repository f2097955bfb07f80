package rangebar

import (
	"io"

	"github.com/gdamore/tcell/v3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// State is a snapshot of a range bar that survives recreating the widget,
// for example across restarts of an application.
type State struct {
	BarWeight            float64     `yaml:"bar_weight"`
	BarColor             tcell.Color `yaml:"bar_color"`
	ConnectingLineWeight float64     `yaml:"connecting_line_weight"`
	ConnectingLineColor  tcell.Color `yaml:"connecting_line_color"`
	ThumbRadius          float64     `yaml:"thumb_radius"`
	ThumbColor           tcell.Color `yaml:"thumb_color"`
	LeftIndex            int         `yaml:"left_index"`
	RightIndex           int         `yaml:"right_index"`
	MinValue             int         `yaml:"min_value"`
	MaxValue             int         `yaml:"max_value"`
	FirstSet             bool        `yaml:"first_set"`
}

// SaveState returns a snapshot of the range bar.
func (r *RangeBar) SaveState() State {
	return State{
		BarWeight:            r.cfg.BarWeight,
		BarColor:             r.cfg.BarColor,
		ConnectingLineWeight: r.cfg.ConnectingLineWeight,
		ConnectingLineColor:  r.cfg.ConnectingLineColor,
		ThumbRadius:          r.cfg.ThumbRadius,
		ThumbColor:           r.cfg.ThumbColor,
		LeftIndex:            r.leftIndex,
		RightIndex:           r.rightIndex,
		MinValue:             r.minValue,
		MaxValue:             r.maxValue,
		FirstSet:             r.firstSet,
	}
}

// RestoreState applies a snapshot taken with SaveState. Snapshots with
// invalid bounds or negative or non-finite sizes are rejected with ErrInvalidState and
// leave the range bar unchanged. Indices that do not fit the restored bounds
// are replaced by the full span.
//
// A thumb being dragged is released before the snapshot is applied. The
// changed handler is not called for the snapshot itself.
func (r *RangeBar) RestoreState(s State) error {
	if err := checkBounds(s.MinValue, s.MaxValue); err != nil {
		return errors.Wrapf(ErrInvalidState, "%v", err)
	}
	for _, size := range []float64{s.BarWeight, s.ConnectingLineWeight, s.ThumbRadius} {
		if err := checkSize("size", size); err != nil {
			return errors.Wrapf(ErrInvalidState, "%v", err)
		}
	}
	r.cancel()

	r.cfg.BarWeight = s.BarWeight
	r.cfg.BarColor = s.BarColor
	r.cfg.ConnectingLineWeight = s.ConnectingLineWeight
	r.cfg.ConnectingLineColor = s.ConnectingLineColor
	r.cfg.ThumbRadius = s.ThumbRadius
	r.cfg.ThumbColor = s.ThumbColor
	r.minValue, r.maxValue = s.MinValue, s.MaxValue
	r.firstSet = s.FirstSet

	r.leftIndex, r.rightIndex = s.LeftIndex, s.RightIndex
	if !r.inBounds(s.LeftIndex, s.RightIndex) {
		r.log.WithFields(logrus.Fields{
			"left":  s.LeftIndex,
			"right": s.RightIndex,
			"min":   s.MinValue,
			"max":   s.MaxValue,
		}).Warn("restored range bar indices out of bounds, selecting full span")
		r.leftIndex, r.rightIndex = s.MinValue, s.MaxValue
	}

	r.relayout()
	return nil
}

// EncodeState writes s to w as YAML.
func EncodeState(w io.Writer, s State) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err, "encode state")
	}
	return errors.Wrap(enc.Close(), "encode state")
}

// DecodeState reads a State written by EncodeState. Unknown fields are an
// error.
func DecodeState(r io.Reader) (State, error) {
	var s State
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return State{}, errors.Wrap(err, "decode state")
	}
	return s, nil
}
