package rangebar

import (
	"math"

	"github.com/ayn2op/rangebar/keybind"
	"github.com/gdamore/tcell/v3"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// dragState is the pointer state of a range bar.
type dragState int

const (
	dragIdle dragState = iota
	dragLeft
	dragRight
)

// slot returns the thumb slot being dragged. It must not be called while
// idle.
func (d dragState) slot() int {
	if d == dragRight {
		return 1
	}
	return 0
}

// swapped returns the state after both thumb slots traded places.
func (d dragState) swapped() dragState {
	switch d {
	case dragLeft:
		return dragRight
	case dragRight:
		return dragLeft
	}
	return d
}

func (d dragState) String() string {
	switch d {
	case dragLeft:
		return "left"
	case dragRight:
		return "right"
	}
	return "idle"
}

// RangeBar is a horizontal bar with two thumbs selecting a range of integer
// indices between a minimum and a maximum value. Thumbs are dragged with the
// mouse and snap to the nearest step on release. A click away from both
// thumbs moves the nearer one there.
//
// The left index never exceeds the right index. When a dragged thumb passes
// the other one, both swap roles and the dragged thumb continues as the other
// side of the range.
//
// See https://github.com/ayn2op/rangebar for an example.
type RangeBar struct {
	*Box

	cfg Config

	// The addressable range and the selected indices.
	minValue, maxValue    int
	leftIndex, rightIndex int

	// firstSet is true until the first press, tap, key or programmatic index
	// change. While it is set, bound changes reset the selection to the full
	// span.
	firstSet bool

	// Layout. laidOut is false until the inner rect is large enough to hold
	// a track. thumbs[0] is always the left thumb.
	laidOut     bool
	needsLayout bool
	layoutRect  [4]int
	track       Track
	thumbs      [2]Handle

	drag     dragState
	tapArmed bool

	// The slot keyboard moves apply to.
	active int

	disabled bool
	keyMap   KeyMap

	changed  func(left, right int)
	released func(left, right int)

	log logrus.FieldLogger
}

// NewRangeBar returns a range bar built from cfg, selecting the full span.
func NewRangeBar(cfg Config) (*RangeBar, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &RangeBar{
		Box:        NewBox(),
		cfg:        cfg,
		minValue:   cfg.MinValue,
		maxValue:   cfg.MaxValue,
		leftIndex:  cfg.MinValue,
		rightIndex: cfg.MaxValue,
		firstSet:   true,
		keyMap:     DefaultKeyMap(),
		log:        discardLogger(),
	}
	r.applyTheme(cfg.Theme)
	r.SetRect(0, 0, DefaultWidth, DefaultHeight)
	return r, nil
}

// ensureLayout rebuilds the track and the thumbs when the inner rect changed
// since the last layout. It returns false while there is no room for a track.
func (r *RangeBar) ensureLayout() bool {
	x, y, width, height := r.GetInnerRect()
	rect := [4]int{x, y, width, height}
	if r.laidOut && !r.needsLayout && rect == r.layoutRect {
		return true
	}
	r.needsLayout = false
	r.layoutRect = rect

	margin := math.Ceil(r.cfg.ThumbRadius)
	length := float64(width-1) - 2*margin
	if length <= 0 || height <= 0 {
		r.laidOut = false
		r.drag = dragIdle
		r.tapArmed = false
		return false
	}

	r.track = NewTrack(float64(x)+margin, length, r.maxValue-r.minValue)
	r.laidOut = true
	r.placeThumbs()
	return true
}

// placeThumbs recreates both thumbs at the positions of the current indices.
// Any gesture in progress is dropped.
func (r *RangeBar) placeThumbs() {
	_, y, _, height := r.GetInnerRect()
	centerY := float64(y + height/2)
	for slot, index := range [2]int{r.leftIndex, r.rightIndex} {
		position := r.track.StepCoordinate(index - r.minValue)
		r.thumbs[slot] = NewHandle(position, centerY, r.cfg.ThumbRadius, r.cfg.MinTouchRadius)
	}
	r.drag = dragIdle
	r.tapArmed = false
}

// relayout forces a rebuild of the track and the thumbs.
func (r *RangeBar) relayout() {
	r.needsLayout = true
	r.ensureLayout()
	r.MarkDirty()
}

// indexAt returns the index closest to x, within bounds.
func (r *RangeBar) indexAt(x float64) int {
	index := r.track.NearestStepIndex(x) + r.minValue
	return min(max(index, r.minValue), r.maxValue)
}

// updateIndices recomputes both indices from the thumb positions and notifies
// the changed handler if the pair differs from the last one.
func (r *RangeBar) updateIndices() {
	left := r.indexAt(r.thumbs[0].Position())
	right := r.indexAt(r.thumbs[1].Position())
	if left == r.leftIndex && right == r.rightIndex {
		return
	}
	r.leftIndex, r.rightIndex = left, right
	r.notifyChanged()
}

// orderThumbs swaps both slots when the left thumb passed the right one.
func (r *RangeBar) orderThumbs() {
	if r.thumbs[0].Position() <= r.thumbs[1].Position() {
		return
	}
	r.thumbs[0], r.thumbs[1] = r.thumbs[1], r.thumbs[0]
	r.drag = r.drag.swapped()
	r.active = 1 - r.active
	r.log.WithField("drag", r.drag).Debug("range bar thumbs swapped")
}

func (r *RangeBar) notifyChanged() {
	r.log.WithFields(logrus.Fields{
		"left":  r.leftIndex,
		"right": r.rightIndex,
	}).Debug("range bar indices changed")
	if r.changed != nil {
		r.changed(r.leftIndex, r.rightIndex)
	}
}

func (r *RangeBar) notifyReleased() {
	r.log.WithFields(logrus.Fields{
		"left":  r.leftIndex,
		"right": r.rightIndex,
	}).Debug("range bar released")
	if r.released != nil {
		r.released(r.leftIndex, r.rightIndex)
	}
}

// pointerDown presses the thumb under (x, y), testing the left thumb first.
// When neither thumb is hit, the next pointerUp moves the nearer thumb.
func (r *RangeBar) pointerDown(x, y float64) {
	if r.disabled || r.drag != dragIdle || !r.ensureLayout() {
		return
	}
	r.tapArmed = false

	switch {
	case r.thumbs[0].HitTest(x, y):
		r.press(0)
	case r.thumbs[1].HitTest(x, y):
		r.press(1)
	default:
		r.tapArmed = true
	}
}

func (r *RangeBar) press(slot int) {
	r.thumbs[slot].Press()
	r.drag = dragLeft
	if slot == 1 {
		r.drag = dragRight
	}
	r.active = slot
	r.firstSet = false
	r.MarkDirty()
	r.log.WithField("thumb", r.drag).Debug("range bar thumb pressed")
}

// pointerMove moves the dragged thumb to x. It returns false if nothing is
// dragged or x lies outside the track.
func (r *RangeBar) pointerMove(x float64) bool {
	if r.drag == dragIdle || !r.laidOut {
		return false
	}
	if x < r.track.LeftEdge() || x > r.track.RightEdge() {
		return false
	}

	r.thumbs[r.drag.slot()].SetPosition(x)
	r.orderThumbs()
	r.updateIndices()
	r.MarkDirty()
	return true
}

// pointerUp ends a drag or a tap. A dragged thumb snaps to the step nearest
// to its position. After a tap the thumb nearer to x moves to x and snaps.
func (r *RangeBar) pointerUp(x float64) {
	if !r.laidOut {
		r.drag = dragIdle
		r.tapArmed = false
		return
	}

	switch {
	case r.drag != dragIdle:
		r.releaseThumb(r.drag.slot())
	case r.tapArmed:
		r.tapArmed = false
		x = min(max(x, r.track.LeftEdge()), r.track.RightEdge())
		slot := r.nearestThumb(x)
		r.thumbs[slot].SetPosition(x)
		r.releaseThumb(slot)
		r.active = slot
		r.firstSet = false
	default:
		return
	}

	r.drag = dragIdle
	r.orderThumbs()
	r.updateIndices()
	r.notifyReleased()
	r.MarkDirty()
}

func (r *RangeBar) releaseThumb(slot int) {
	thumb := &r.thumbs[slot]
	thumb.SetPosition(r.track.NearestStepCoordinate(thumb.Position()))
	thumb.Release()
}

// nearestThumb returns the slot of the thumb closest to x. On a tie the thumb
// on the side of x wins.
func (r *RangeBar) nearestThumb(x float64) int {
	left := math.Abs(x - r.thumbs[0].Position())
	right := math.Abs(x - r.thumbs[1].Position())
	switch {
	case left < right:
		return 0
	case right < left:
		return 1
	case x > r.thumbs[0].Position():
		return 1
	}
	return 0
}

// cancel ends the current gesture. A dragged thumb is released in place, an
// armed tap is dropped.
func (r *RangeBar) cancel() {
	r.tapArmed = false
	if r.drag != dragIdle {
		r.pointerUp(r.thumbs[r.drag.slot()].Position())
	}
}

// SetThumbIndices selects the range [left, right].
//
// With IndexValidationStrict, indices outside the bounds or a left index
// greater than the right one are rejected with ErrIndexOutOfRange. With
// IndexValidationClamp, both indices are clamped to the bounds and put in
// order.
//
// A thumb being dragged is released first. The changed handler is always
// called on success.
func (r *RangeBar) SetThumbIndices(left, right int) error {
	if r.cfg.IndexValidation == IndexValidationStrict {
		if left < r.minValue || right > r.maxValue || left > right {
			return errors.Wrapf(ErrIndexOutOfRange, "indices [%d, %d] outside [%d, %d]", left, right, r.minValue, r.maxValue)
		}
	} else {
		left, right = r.clampIndices(left, right)
	}

	r.cancel()
	r.firstSet = false
	r.applyIndices(left, right)
	r.notifyChanged()
	return nil
}

func (r *RangeBar) clampIndices(left, right int) (int, int) {
	left = min(max(left, r.minValue), r.maxValue)
	right = min(max(right, r.minValue), r.maxValue)
	if left > right {
		left, right = right, left
	}
	return left, right
}

func (r *RangeBar) inBounds(left, right int) bool {
	return left >= r.minValue && right <= r.maxValue && left <= right
}

// applyIndices stores the indices and moves the thumbs there.
func (r *RangeBar) applyIndices(left, right int) {
	r.leftIndex, r.rightIndex = left, right
	if r.laidOut {
		r.placeThumbs()
	}
	r.MarkDirty()
}

// GetThumbIndices returns the selected range.
func (r *RangeBar) GetThumbIndices() (left, right int) {
	return r.leftIndex, r.rightIndex
}

// SetBounds sets the addressable range. There must be at least one step
// between min and max, otherwise ErrInvalidBounds is returned and nothing
// changes.
//
// Until the selection was first changed, it follows the bounds and covers the
// full span. Afterwards it is kept unless it no longer fits, in which case it
// is reset to the full span (IndexValidationStrict) or clamped
// (IndexValidationClamp). A thumb being dragged is released first.
func (r *RangeBar) SetBounds(minValue, maxValue int) error {
	if err := checkBounds(minValue, maxValue); err != nil {
		return err
	}
	r.cancel()
	r.minValue, r.maxValue = minValue, maxValue

	left, right := r.leftIndex, r.rightIndex
	switch {
	case r.firstSet:
		left, right = minValue, maxValue
	case !r.inBounds(left, right) && r.cfg.IndexValidation == IndexValidationStrict:
		left, right = minValue, maxValue
	case !r.inBounds(left, right):
		left, right = r.clampIndices(left, right)
	}

	notify := r.firstSet || left != r.leftIndex || right != r.rightIndex
	r.leftIndex, r.rightIndex = left, right
	r.relayout()
	if notify {
		r.notifyChanged()
	}
	return nil
}

// GetBounds returns the addressable range.
func (r *RangeBar) GetBounds() (minValue, maxValue int) {
	return r.minValue, r.maxValue
}

// SetMinValue sets the lower bound.
func (r *RangeBar) SetMinValue(minValue int) error {
	return r.SetBounds(minValue, r.maxValue)
}

// SetMaxValue sets the upper bound.
func (r *RangeBar) SetMaxValue(maxValue int) error {
	return r.SetBounds(r.minValue, maxValue)
}

// SetTickCount sets the bounds to the ticks 0 to count-1.
func (r *RangeBar) SetTickCount(count int) error {
	if count < 2 {
		return errors.Wrapf(ErrInvalidBounds, "tick count %d is less than 2", count)
	}
	return r.SetBounds(0, count-1)
}

// SetBarColor sets the color of the bar.
func (r *RangeBar) SetBarColor(color tcell.Color) *RangeBar {
	r.cfg.BarColor = color
	r.MarkDirty()
	return r
}

// SetBarWeight sets the stroke weight of the bar.
func (r *RangeBar) SetBarWeight(weight float64) error {
	if err := checkSize("bar weight", weight); err != nil {
		return err
	}
	r.cfg.BarWeight = weight
	r.MarkDirty()
	return nil
}

// SetConnectingLineColor sets the color of the line between both thumbs.
func (r *RangeBar) SetConnectingLineColor(color tcell.Color) *RangeBar {
	r.cfg.ConnectingLineColor = color
	r.MarkDirty()
	return r
}

// SetConnectingLineWeight sets the stroke weight of the line between both
// thumbs.
func (r *RangeBar) SetConnectingLineWeight(weight float64) error {
	if err := checkSize("connecting line weight", weight); err != nil {
		return err
	}
	r.cfg.ConnectingLineWeight = weight
	r.MarkDirty()
	return nil
}

// SetThumbRadius sets the radius of both thumbs. The track is inset by the
// radius, rounded up, on both sides.
func (r *RangeBar) SetThumbRadius(radius float64) error {
	if err := checkSize("thumb radius", radius); err != nil {
		return err
	}
	r.cfg.ThumbRadius = radius
	r.relayout()
	return nil
}

// SetMinTouchRadius sets the smallest radius around a thumb accepting
// presses.
func (r *RangeBar) SetMinTouchRadius(radius float64) error {
	if err := checkSize("minimum touch radius", radius); err != nil {
		return err
	}
	r.cfg.MinTouchRadius = radius
	r.relayout()
	return nil
}

// SetThumbColor sets the color of released thumbs.
func (r *RangeBar) SetThumbColor(color tcell.Color) *RangeBar {
	r.cfg.ThumbColor = color
	r.MarkDirty()
	return r
}

// SetThumbPressedColor sets the color of a dragged thumb.
func (r *RangeBar) SetThumbPressedColor(color tcell.Color) *RangeBar {
	r.cfg.ThumbPressedColor = color
	r.MarkDirty()
	return r
}

// SetShowTicks sets whether tick marks are drawn on the bar.
func (r *RangeBar) SetShowTicks(show bool) *RangeBar {
	r.cfg.ShowTicks = show
	r.MarkDirty()
	return r
}

// SetShowLabels sets whether the indices are printed above the thumbs.
func (r *RangeBar) SetShowLabels(show bool) *RangeBar {
	r.cfg.ShowLabels = show
	r.MarkDirty()
	return r
}

// SetIndexValidation sets how SetThumbIndices and SetBounds treat indices
// outside the bounds.
func (r *RangeBar) SetIndexValidation(validation IndexValidation) *RangeBar {
	r.cfg.IndexValidation = validation
	return r
}

// SetTheme sets the colors of the box and the labels.
func (r *RangeBar) SetTheme(theme Theme) *RangeBar {
	r.cfg.Theme = theme
	r.applyTheme(theme)
	return r
}

// SetKeyMap sets the keys the range bar responds to.
func (r *RangeBar) SetKeyMap(keyMap KeyMap) *RangeBar {
	r.keyMap = keyMap
	return r
}

// SetLogger sets the logger receiving debug entries about gestures and index
// changes.
func (r *RangeBar) SetLogger(log logrus.FieldLogger) *RangeBar {
	if log == nil {
		log = discardLogger()
	}
	r.log = log
	return r
}

// SetChangedFunc sets a handler which is called whenever the selected range
// changes: while dragging, on release, on key presses and when indices or
// bounds are set.
func (r *RangeBar) SetChangedFunc(handler func(left, right int)) *RangeBar {
	r.changed = handler
	return r
}

// SetReleasedFunc sets a handler which is called when a drag, a click or a
// key press completes, with the selected range.
func (r *RangeBar) SetReleasedFunc(handler func(left, right int)) *RangeBar {
	r.released = handler
	return r
}

// SetDisabled sets whether the range bar ignores input. Disabling it during a
// drag releases the dragged thumb.
func (r *RangeBar) SetDisabled(disabled bool) *RangeBar {
	if disabled {
		r.cancel()
	}
	if r.disabled != disabled {
		r.disabled = disabled
		r.MarkDirty()
	}
	return r
}

// GetDisabled returns whether the range bar ignores input.
func (r *RangeBar) GetDisabled() bool {
	return r.disabled
}

// Dragging returns whether a thumb is being dragged.
func (r *RangeBar) Dragging() bool {
	return r.drag != dragIdle
}

// ActiveThumb returns 0 if keys move the left thumb and 1 if they move the
// right one.
func (r *RangeBar) ActiveThumb() int {
	return r.active
}

// moveActive moves the active thumb to index without passing the other one.
func (r *RangeBar) moveActive(index int) {
	index = min(max(index, r.minValue), r.maxValue)
	left, right := r.leftIndex, r.rightIndex
	if r.active == 0 {
		left = min(index, right)
	} else {
		right = max(index, left)
	}

	r.firstSet = false
	changed := left != r.leftIndex || right != r.rightIndex
	r.applyIndices(left, right)
	if changed {
		r.notifyChanged()
	}
	r.notifyReleased()
}

func (r *RangeBar) activeIndex() int {
	if r.active == 0 {
		return r.leftIndex
	}
	return r.rightIndex
}

// Draw draws the bar, the connecting line, the thumbs and, if enabled, the
// labels.
func (r *RangeBar) Draw(screen tcell.Screen) {
	r.DrawForSubclass(screen, r)
	if !r.ensureLayout() {
		return
	}

	for _, c := range r.cells() {
		screen.Put(c.x, c.y, c.glyph, c.style)
	}
	if r.cfg.ShowLabels {
		r.drawLabels(screen)
	}
}

// InputHandler handles key events.
func (r *RangeBar) InputHandler(event *tcell.EventKey) Command {
	if r.disabled || r.drag != dragIdle {
		return nil
	}

	switch {
	case keybind.Matches(event, r.keyMap.SwitchThumb):
		r.active = 1 - r.active
		r.MarkDirty()
	case keybind.Matches(event, r.keyMap.Decrease):
		r.moveActive(r.activeIndex() - 1)
	case keybind.Matches(event, r.keyMap.Increase):
		r.moveActive(r.activeIndex() + 1)
	case keybind.Matches(event, r.keyMap.First):
		r.moveActive(r.minValue)
	case keybind.Matches(event, r.keyMap.Last):
		r.moveActive(r.maxValue)
	default:
		return nil
	}
	return RedrawCommand{}
}

// MouseHandler handles mouse actions. The range bar captures the mouse from
// a press until the button is released.
func (r *RangeBar) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if r.disabled {
		return nil, nil
	}

	x, y := event.Position()
	switch action {
	case MouseLeftDown:
		if !r.InRect(x, y) {
			return nil, nil
		}
		var cmd Command = SetFocusCommand{Target: r}
		if r.InInnerRect(x, y) {
			r.pointerDown(float64(x), float64(y))
			cmd = AppendCommand(cmd, RedrawCommand{})
		}
		return r.capture(), cmd
	case MouseMove:
		if r.drag == dragIdle {
			return r.capture(), nil
		}
		if r.pointerMove(float64(x)) {
			return r, RedrawCommand{}
		}
		return r, ConsumeEventCommand{}
	case MouseLeftUp:
		if r.drag == dragIdle && !r.tapArmed {
			return nil, nil
		}
		r.pointerUp(float64(x))
		return nil, RedrawCommand{}
	case MouseScrollUp, MouseScrollDown:
		if r.drag != dragIdle || !r.InRect(x, y) {
			return nil, nil
		}
		step := 1
		if action == MouseScrollDown {
			step = -1
		}
		r.moveActive(r.activeIndex() + step)
		return nil, RedrawCommand{}
	}
	return r.capture(), nil
}

// capture returns the range bar while a gesture is in progress.
func (r *RangeBar) capture() Primitive {
	if r.drag != dragIdle || r.tapArmed {
		return r
	}
	return nil
}

// Blur releases a dragged thumb when the range bar loses focus.
func (r *RangeBar) Blur() {
	r.cancel()
	r.Box.Blur()
}
