package rangebar

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCell struct {
	str   string
	style tcell.Style
}

// testScreen is an in-memory screen. Its event queue holds a fixed list of
// events and is closed afterwards, which ends Application.Run.
type testScreen struct {
	tcell.Screen

	width, height int
	events        chan tcell.Event
	cells         map[[2]int]testCell
	mouse         bool
	shown         int
	finalized     bool
}

func newTestScreen(width, height int, events ...tcell.Event) *testScreen {
	s := &testScreen{
		width:  width,
		height: height,
		cells:  make(map[[2]int]testCell),
	}
	s.queue(events...)
	return s
}

func (s *testScreen) queue(events ...tcell.Event) {
	s.events = make(chan tcell.Event, len(events))
	for _, event := range events {
		s.events <- event
	}
	close(s.events)
}

func (s *testScreen) EventQ() chan tcell.Event         { return s.events }
func (s *testScreen) EnableMouse(...tcell.MouseFlags) { s.mouse = true }
func (s *testScreen) Size() (int, int)                { return s.width, s.height }
func (s *testScreen) Clear()                          { clear(s.cells) }
func (s *testScreen) Show()                           { s.shown++ }
func (s *testScreen) Fini()                           { s.finalized = true }

func (s *testScreen) Put(x, y int, str string, style tcell.Style) (string, int) {
	s.cells[[2]int{x, y}] = testCell{str, style}
	return "", 1
}

func (s *testScreen) Get(x, y int) (string, tcell.Style, int) {
	c := s.cells[[2]int{x, y}]
	return c.str, c.style, 1
}

func TestMouseTrackerActions(t *testing.T) {
	var m mouseTracker
	now := time.Now()

	assert.Equal(t, []MouseAction{MouseMove, MouseLeftDown}, m.actions(3, 1, tcell.ButtonPrimary, now))
	assert.Empty(t, m.actions(3, 1, tcell.ButtonPrimary, now))
	assert.Equal(t, []MouseAction{MouseLeftUp, MouseLeftClick}, m.actions(3, 1, tcell.ButtonNone, now))

	now = now.Add(DoubleClickInterval / 2)
	m.actions(3, 1, tcell.ButtonPrimary, now)
	assert.Equal(t, []MouseAction{MouseLeftUp, MouseLeftDoubleClick}, m.actions(3, 1, tcell.ButtonNone, now))
}

func TestMouseTrackerDrag(t *testing.T) {
	var m mouseTracker
	now := time.Now()

	m.actions(3, 1, tcell.ButtonPrimary, now)
	assert.Equal(t, []MouseAction{MouseMove}, m.actions(7, 1, tcell.ButtonPrimary, now))
	assert.Equal(t, []MouseAction{MouseMove, MouseLeftUp}, m.actions(9, 1, tcell.ButtonNone, now), "no click after moving")
}

func TestMouseTrackerWheel(t *testing.T) {
	var m mouseTracker
	now := time.Now()

	m.actions(0, 0, tcell.ButtonNone, now)
	assert.Equal(t, []MouseAction{MouseScrollUp}, m.actions(0, 0, tcell.WheelUp, now))
	assert.Equal(t, []MouseAction{MouseScrollDown}, m.actions(0, 0, tcell.WheelDown, now))
}

func TestApplicationExecuteCommand(t *testing.T) {
	a := NewApplication()
	r := newTestBar(t, 0, 10)

	assert.False(t, a.executeCommand(nil))
	assert.True(t, a.executeCommand(RedrawCommand{}))
	assert.False(t, a.executeCommand(ConsumeEventCommand{}))

	assert.True(t, a.executeCommand(BatchCommand{SetFocusCommand{Target: r}, ConsumeEventCommand{}}))
	assert.Equal(t, r, a.GetFocus())
	assert.True(t, r.HasFocus())
	assert.False(t, a.executeCommand(SetFocusCommand{Target: r}), "focus did not change")

	a.SetFocus(NewBox())
	assert.False(t, r.HasFocus())
}

func TestApplicationFocusKeepsDrag(t *testing.T) {
	a := NewApplication()
	r := newTestBar(t, 0, 10)
	a.SetFocus(r)

	r.pointerDown(0, 1)
	a.executeCommand(SetFocusCommand{Target: r})
	assert.True(t, r.Dragging())
}

func TestApplicationRunDrag(t *testing.T) {
	r := newTestBar(t, 0, 10)
	rec := record(r)
	screen := newTestScreen(41, 3,
		tcell.NewEventMouse(0, 1, tcell.ButtonPrimary, tcell.ModNone),
		tcell.NewEventMouse(8, 1, tcell.ButtonPrimary, tcell.ModNone),
	)
	a := NewApplication().SetScreen(screen).SetRoot(r)

	require.NoError(t, a.Run())
	assert.True(t, screen.mouse)
	assert.Equal(t, r, a.mouseCapture, "the range bar captures the mouse while dragging")
	assert.True(t, r.Dragging())
	assertIndices(t, r, 2, 10)
	assert.Empty(t, rec.released)

	screen.queue(
		tcell.NewEventMouse(8, 1, tcell.ButtonNone, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRight, "", tcell.ModNone),
	)
	require.NoError(t, a.Run())
	assert.Nil(t, a.mouseCapture)
	assert.False(t, r.Dragging())
	assertIndices(t, r, 3, 10)
	assert.Equal(t, [][2]int{{2, 10}, {3, 10}}, rec.changed)
	assert.Equal(t, [][2]int{{2, 10}, {3, 10}}, rec.released)

	assert.Positive(t, screen.shown)
	assert.Equal(t, GeometricBlackDiamond, screen.cells[[2]int{12, 1}].str, "the focused left thumb is drawn at its new column")
	assert.False(t, screen.finalized)
}

func TestApplicationRunQuit(t *testing.T) {
	root := &quitter{Box: NewBox()}
	screen := newTestScreen(10, 2,
		tcell.NewEventKey(tcell.KeyRune, "q", tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, "q", tcell.ModNone),
	)
	a := NewApplication().SetScreen(screen).SetRoot(root)

	require.NoError(t, a.Run())
	assert.True(t, screen.finalized)
	assert.Equal(t, 1, root.keys, "the loop ends once the screen is finalized")
}

type quitter struct {
	*Box
	keys int
}

func (q *quitter) InputHandler(event *tcell.EventKey) Command {
	q.keys++
	return QuitCommand{}
}
