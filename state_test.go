package rangebar

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v3/color"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRoundTrip(t *testing.T) {
	r := newTestBar(t, 100, 300)
	require.NoError(t, r.SetThumbIndices(150, 250))
	require.NoError(t, r.SetBarWeight(5))
	r.SetThumbColor(color.Red)

	var buf bytes.Buffer
	require.NoError(t, EncodeState(&buf, r.SaveState()))
	state, err := DecodeState(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(r.SaveState(), state); diff != "" {
		t.Fatalf("decoded state mismatch (-want +got):\n%s", diff)
	}

	restored := newTestBar(t, 0, 10)
	rec := record(restored)
	require.NoError(t, restored.RestoreState(state))

	assertIndices(t, restored, 150, 250)
	minValue, maxValue := restored.GetBounds()
	assert.Equal(t, [2]int{100, 300}, [2]int{minValue, maxValue})
	assert.False(t, restored.firstSet)
	assert.Empty(t, rec.changed)
	if diff := cmp.Diff(r.SaveState(), restored.SaveState()); diff != "" {
		t.Errorf("restored state mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, restored.track.StepCoordinate(50), restored.thumbs[0].Position())
}

func TestRestoreStateFallsBackToFullSpan(t *testing.T) {
	r := newTestBar(t, 0, 10)
	state := r.SaveState()
	state.LeftIndex, state.RightIndex = 8, 3

	require.NoError(t, r.RestoreState(state))
	assertIndices(t, r, 0, 10)

	state.LeftIndex, state.RightIndex = 2, 14
	require.NoError(t, r.RestoreState(state))
	assertIndices(t, r, 0, 10)
}

func TestRestoreStateRejectsInvalidState(t *testing.T) {
	r := newTestBar(t, 0, 10)
	require.NoError(t, r.SetThumbIndices(2, 4))

	state := r.SaveState()
	state.MinValue, state.MaxValue = 10, 3
	assert.ErrorIs(t, r.RestoreState(state), ErrInvalidState)

	state = r.SaveState()
	state.ThumbRadius = -2
	assert.ErrorIs(t, r.RestoreState(state), ErrInvalidState)

	state = r.SaveState()
	state.ThumbRadius = math.NaN()
	assert.ErrorIs(t, r.RestoreState(state), ErrInvalidState)

	state = r.SaveState()
	state.BarWeight = math.Inf(1)
	assert.ErrorIs(t, r.RestoreState(state), ErrInvalidState)

	assertIndices(t, r, 2, 4)
}

func TestDecodeStateUnknownField(t *testing.T) {
	_, err := DecodeState(strings.NewReader("left_index: 1\nvelocity: 3\n"))
	assert.Error(t, err)
}

func TestRestoreStateReleasesDraggedThumb(t *testing.T) {
	r := newTestBar(t, 0, 10)
	state := r.SaveState()
	rec := record(r)

	r.pointerDown(0, 1)
	require.True(t, r.pointerMove(13))
	require.NoError(t, r.RestoreState(state))

	assert.False(t, r.Dragging())
	assert.False(t, r.thumbs[0].Pressed())
	assertIndices(t, r, 0, 10)
	assert.Equal(t, [][2]int{{3, 10}}, rec.changed)
	assert.Equal(t, [][2]int{{3, 10}}, rec.released)
}
