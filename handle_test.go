package rangebar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleHitRadius(t *testing.T) {
	small := NewHandle(10, 1, 0.5, 2)
	assert.Equal(t, 0.5, small.Radius())
	assert.Equal(t, 2.0, small.HitRadius())

	large := NewHandle(10, 1, 3, 2)
	assert.Equal(t, 3.0, large.HitRadius())
}

func TestHandleHitTest(t *testing.T) {
	h := NewHandle(10, 1, 0, 1)

	assert.True(t, h.HitTest(10, 1))
	assert.True(t, h.HitTest(9, 0))
	assert.True(t, h.HitTest(11, 2))
	assert.False(t, h.HitTest(12, 1))
	assert.False(t, h.HitTest(10, 3))
}

func TestHandlePress(t *testing.T) {
	h := NewHandle(0, 0, 1, 1)
	assert.False(t, h.Pressed())

	h.Press()
	assert.True(t, h.Pressed())

	h.SetPosition(-5)
	assert.Equal(t, -5.0, h.Position(), "positions are not clamped")

	h.Release()
	assert.False(t, h.Pressed())
}

func TestHandleColumnRoundsHalfUp(t *testing.T) {
	h := NewHandle(4.5, 0, 1, 1)
	assert.Equal(t, 5, h.column())

	h.SetPosition(4.49)
	assert.Equal(t, 4, h.column())
}
