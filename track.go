package rangebar

import (
	"fmt"
	"math"
)

// deadZone is the fraction of the track length at either end inside which a
// snapped coordinate collapses onto the end itself.
const deadZone = 0.1

// Track is the horizontal line of a range bar with its evenly spaced steps.
// It converts between x-coordinates and step indices. A Track is immutable;
// it is rebuilt whenever the layout, the bounds or the thumb radius change.
type Track struct {
	originX      float64
	length       float64
	stepCount    int
	stepDistance float64
}

// NewTrack returns a track starting at originX and spanning length cells,
// divided into stepCount steps. It panics if stepCount is smaller than 1 or
// if length is not positive. Callers validate their bounds before building a
// track.
func NewTrack(originX, length float64, stepCount int) Track {
	if stepCount < 1 {
		panic(fmt.Sprintf("rangebar: track step count must be at least 1, got %d", stepCount))
	}
	if length <= 0 {
		panic(fmt.Sprintf("rangebar: track length must be positive, got %g", length))
	}
	return Track{
		originX:      originX,
		length:       length,
		stepCount:    stepCount,
		stepDistance: length / float64(stepCount),
	}
}

// LeftEdge returns the x-coordinate of the left end of the track.
func (t Track) LeftEdge() float64 {
	return t.originX
}

// RightEdge returns the x-coordinate of the right end of the track.
func (t Track) RightEdge() float64 {
	return t.originX + t.length
}

// Length returns the length of the track.
func (t Track) Length() float64 {
	return t.length
}

// StepCount returns the number of steps between both ends.
func (t Track) StepCount() int {
	return t.stepCount
}

// StepDistance returns the distance between two neighboring steps.
func (t Track) StepDistance() float64 {
	return t.stepDistance
}

// NearestStepIndex returns the zero-based index of the step closest to x.
// Ties round away from zero. The result is not clamped, so coordinates
// outside the track yield indices outside [0, StepCount()].
func (t Track) NearestStepIndex(x float64) int {
	return int(math.Round(float64(t.stepCount) * (x - t.originX) / t.length))
}

// StepCoordinate returns the x-coordinate of the step with the given index.
func (t Track) StepCoordinate(index int) float64 {
	return t.originX + float64(index)*t.stepDistance
}

// NearestStepCoordinate returns the coordinate x snaps to on release: the
// closest step, clamped to the track. Anything within the first or last 10%
// of the track collapses onto that end so the bounds are always reachable.
func (t Track) NearestStepCoordinate(x float64) float64 {
	if snapped, ok := t.collapse(x); ok {
		return snapped
	}
	c := t.StepCoordinate(t.NearestStepIndex(x))
	c = min(max(c, t.LeftEdge()), t.RightEdge())
	if snapped, ok := t.collapse(c); ok {
		return snapped
	}
	return c
}

// collapse reports whether x lies in one of the dead zones and, if so, the
// end it collapses onto.
func (t Track) collapse(x float64) (float64, bool) {
	zone := t.length * deadZone
	switch {
	case x < t.originX+zone:
		return t.LeftEdge(), true
	case x > t.RightEdge()-zone:
		return t.RightEdge(), true
	}
	return x, false
}
