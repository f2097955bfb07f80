package rangebar

import "math"

// Handle is one draggable thumb of a range bar.
//
// The owner sets its position freely; a Handle never clamps. The range bar
// checks a new position against the track before committing it.
type Handle struct {
	// The x-coordinate of the thumb's center.
	position float64

	// The y-coordinate of the track row the thumb sits on.
	centerY float64

	// The visual radius and the radius of the area accepting presses. The
	// latter is never smaller than the configured minimum touch radius so that
	// small thumbs stay easy to hit.
	radius    float64
	hitRadius float64

	// Whether the thumb is currently being dragged.
	pressed bool
}

// NewHandle returns a released handle at the given position.
func NewHandle(position, centerY, radius, minTouchRadius float64) Handle {
	return Handle{
		position:  position,
		centerY:   centerY,
		radius:    radius,
		hitRadius: max(radius, minTouchRadius),
	}
}

// Position returns the x-coordinate of the handle.
func (h *Handle) Position() float64 {
	return h.position
}

// SetPosition moves the handle to x.
func (h *Handle) SetPosition(x float64) {
	h.position = x
}

// CenterY returns the y-coordinate of the handle.
func (h *Handle) CenterY() float64 {
	return h.centerY
}

// Radius returns the visual radius.
func (h *Handle) Radius() float64 {
	return h.radius
}

// HitRadius returns the radius of the area accepting presses.
func (h *Handle) HitRadius() float64 {
	return h.hitRadius
}

// Press marks the handle as being dragged.
func (h *Handle) Press() {
	h.pressed = true
}

// Release marks the handle as no longer being dragged.
func (h *Handle) Release() {
	h.pressed = false
}

// Pressed returns whether the handle is being dragged.
func (h *Handle) Pressed() bool {
	return h.pressed
}

// HitTest returns whether a press at (x, y) grabs this handle.
func (h *Handle) HitTest(x, y float64) bool {
	return math.Abs(x-h.position) <= h.hitRadius && math.Abs(y-h.centerY) <= h.hitRadius
}

// column returns the screen column the handle is drawn in.
func (h *Handle) column() int {
	return int(math.Round(h.position))
}
