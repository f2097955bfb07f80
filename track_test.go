package rangebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackNearestStep(t *testing.T) {
	track := NewTrack(0, 400, 10)

	assert.Equal(t, 40.0, track.StepDistance())
	assert.Equal(t, 0.0, track.LeftEdge())
	assert.Equal(t, 400.0, track.RightEdge())
	assert.Equal(t, 5, track.NearestStepIndex(203))
	assert.Equal(t, 200.0, track.NearestStepCoordinate(203))
}

func TestTrackNearestStepIndexRoundsHalfAwayFromZero(t *testing.T) {
	track := NewTrack(0, 40, 10)

	assert.Equal(t, 1, track.NearestStepIndex(2))
	assert.Equal(t, 3, track.NearestStepIndex(10))
	assert.Equal(t, 0, track.NearestStepIndex(1.9))
	assert.Equal(t, -1, track.NearestStepIndex(-2))
	assert.Equal(t, 11, track.NearestStepIndex(44), "indices are not clamped")
}

func TestTrackNearestStepIndexIsMonotonic(t *testing.T) {
	tracks := []Track{
		NewTrack(0, 400, 10),
		NewTrack(3, 37, 7),
		NewTrack(-10, 5, 1),
		NewTrack(2, 48, 200),
	}
	for _, track := range tracks {
		previous := track.NearestStepIndex(track.LeftEdge() - 10)
		for x := track.LeftEdge() - 10; x <= track.RightEdge()+10; x += 0.25 {
			index := track.NearestStepIndex(x)
			assert.GreaterOrEqual(t, index, previous, "x=%g", x)
			previous = index
		}
	}
}

func TestTrackNearestStepCoordinateDeadZone(t *testing.T) {
	track := NewTrack(0, 400, 10)

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"left edge", 0, 0},
		{"inside left zone", 39, 0},
		{"left zone boundary", 40, 40},
		{"left of track", -15, 0},
		{"inside right zone", 361, 400},
		{"right zone boundary", 360, 360},
		{"right of track", 420, 400},
		{"middle", 203, 200},
		{"half step", 220, 240},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, track.NearestStepCoordinate(tt.x))
		})
	}
}

func TestTrackDeadZoneSnapsToEdgeIndex(t *testing.T) {
	for _, track := range []Track{NewTrack(0, 400, 10), NewTrack(5, 40, 3), NewTrack(0, 48, 200)} {
		zone := track.Length() * deadZone
		for x := track.LeftEdge(); x < track.LeftEdge()+zone; x += 0.5 {
			assert.Equal(t, 0, track.NearestStepIndex(track.NearestStepCoordinate(x)), "x=%g", x)
		}
		for x := track.RightEdge(); x > track.RightEdge()-zone; x -= 0.5 {
			assert.Equal(t, track.StepCount(), track.NearestStepIndex(track.NearestStepCoordinate(x)), "x=%g", x)
		}
	}
}

func TestNewTrackPanics(t *testing.T) {
	assert.Panics(t, func() { NewTrack(0, 40, 0) })
	assert.Panics(t, func() { NewTrack(0, 0, 4) })
	assert.NotPanics(t, func() { NewTrack(0, 1, 1) })
}
