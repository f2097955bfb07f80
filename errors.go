package rangebar

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidBounds is returned when a range would have fewer than one
	// step, i.e. when the maximum value is not greater than the minimum value.
	ErrInvalidBounds = errors.New("rangebar: invalid bounds")

	// ErrIndexOutOfRange is returned when thumb indices are requested outside
	// the bounds and the range bar validates indices strictly.
	ErrIndexOutOfRange = errors.New("rangebar: thumb index out of range")

	// ErrInvalidConfig is returned for configuration values that cannot be
	// used.
	ErrInvalidConfig = errors.New("rangebar: invalid config")

	// ErrInvalidState is returned when a saved state cannot be restored.
	ErrInvalidState = errors.New("rangebar: invalid state")
)

func checkBounds(minValue, maxValue int) error {
	if maxValue <= minValue {
		return errors.Wrapf(ErrInvalidBounds, "min value %d must be less than max value %d", minValue, maxValue)
	}
	// Steps are counted in an int.
	if maxValue-minValue < 0 {
		return errors.Wrapf(ErrInvalidBounds, "range [%d, %d] has more steps than fit in an int", minValue, maxValue)
	}
	return nil
}

// checkSize rejects weights and radii that are negative or not finite.
func checkSize(name string, size float64) error {
	if size < 0 || math.IsNaN(size) || math.IsInf(size, 0) {
		return errors.Wrapf(ErrInvalidConfig, "%s %g must be a finite non-negative number", name, size)
	}
	return nil
}
