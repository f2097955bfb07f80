package rangebar

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/pkg/errors"
)

// DoubleClickInterval specifies the maximum time between clicks to register a
// double click rather than click.
var DoubleClickInterval = 500 * time.Millisecond

// MouseAction indicates one of the actions the mouse is logically doing.
type MouseAction int16

// Available mouse actions.
const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseLeftDoubleClick
	MouseScrollUp
	MouseScrollDown
)

func (a MouseAction) String() string {
	switch a {
	case MouseMove:
		return "move"
	case MouseLeftDown:
		return "left-down"
	case MouseLeftUp:
		return "left-up"
	case MouseLeftClick:
		return "left-click"
	case MouseLeftDoubleClick:
		return "left-double-click"
	case MouseScrollUp:
		return "scroll-up"
	case MouseScrollDown:
		return "scroll-down"
	}
	return "unknown"
}

// mouseTracker turns raw mouse events, which only carry a position and the
// buttons held down, into mouse actions.
type mouseTracker struct {
	lastX, lastY   int
	downX, downY   int
	lastButtons    tcell.ButtonMask
	lastClick      time.Time
	hasLastPointer bool
}

// actions returns the actions a mouse event at (x, y) with the given buttons
// held down amounts to, in the order they happened.
func (m *mouseTracker) actions(x, y int, buttons tcell.ButtonMask, now time.Time) []MouseAction {
	var actions []MouseAction

	if !m.hasLastPointer || x != m.lastX || y != m.lastY {
		actions = append(actions, MouseMove)
		m.lastX, m.lastY = x, y
		m.hasLastPointer = true
	}

	if (buttons^m.lastButtons)&tcell.ButtonPrimary != 0 {
		if buttons&tcell.ButtonPrimary != 0 {
			actions = append(actions, MouseLeftDown)
			m.downX, m.downY = x, y
		} else {
			actions = append(actions, MouseLeftUp)
			if x == m.downX && y == m.downY {
				if m.lastClick.Add(DoubleClickInterval).Before(now) {
					actions = append(actions, MouseLeftClick)
					m.lastClick = now
				} else {
					actions = append(actions, MouseLeftDoubleClick)
					m.lastClick = time.Time{}
				}
			}
		}
	}
	m.lastButtons = buttons

	if buttons&tcell.WheelUp != 0 {
		actions = append(actions, MouseScrollUp)
	}
	if buttons&tcell.WheelDown != 0 {
		actions = append(actions, MouseScrollDown)
	}
	return actions
}

// Application runs the event loop of a terminal program showing a single root
// primitive.
//
// The following displays a primitive p on the screen until the application is
// stopped (for example via QuitCommand):
//
//	if err := rangebar.NewApplication().SetRoot(p).Run(); err != nil {
//	    panic(err)
//	}
type Application struct {
	sync.RWMutex

	// The application's screen. It is nil before Run and after Stop.
	screen tcell.Screen

	// The primitive which currently has the keyboard focus.
	focus Primitive

	// The root primitive to be seen on the screen.
	root Primitive

	// A Primitive returned by a MouseHandler which receives all mouse events
	// until it returns nil.
	mouseCapture Primitive
	mouse        mouseTracker

	// forceRedraw requests a full clear before the next frame.
	forceRedraw bool
}

// NewApplication creates and returns a new application.
func NewApplication() *Application {
	return &Application{}
}

// SetScreen sets the screen Run uses instead of creating one. The screen
// must be initialized.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

// Run starts the application and thus the event loop. This function returns
// when [Application.Stop] was called.
func (a *Application) Run() error {
	a.Lock()
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			a.Unlock()
			return errors.Wrap(err, "create screen")
		}
		if err = screen.Init(); err != nil {
			a.Unlock()
			return errors.Wrap(err, "init screen")
		}
		a.screen = screen
	}
	screen := a.screen
	screen.EnableMouse()
	a.Unlock()

	// We catch panics to clean up because they mess up the terminal.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.draw()

	var appErr error
	for event := range screen.EventQ() {
		if event == nil {
			break
		}
		if stop, err := a.handleEvent(event); stop {
			appErr = err
			break
		}
		a.RLock()
		running := a.screen != nil
		a.RUnlock()
		if !running {
			break
		}
	}
	return appErr
}

// handleEvent dispatches one event. It returns true when the event loop has
// to end.
func (a *Application) handleEvent(event tcell.Event) (stop bool, err error) {
	a.RLock()
	root := a.root
	a.RUnlock()

	switch event := event.(type) {
	case *tcell.EventKey:
		if root != nil && root.HasFocus() {
			if a.executeCommand(root.InputHandler(event)) {
				a.draw()
			}
		}
	case *tcell.EventResize:
		a.Lock()
		a.forceRedraw = true
		a.Unlock()
		a.draw()
	case *tcell.EventMouse:
		if a.fireMouseActions(event) {
			a.draw()
		}
	case *tcell.EventError:
		a.Stop()
		return true, event
	}
	return false, nil
}

// fireMouseActions derives mouse actions from the provided mouse event and
// forwards them to the capturing primitive or, if there is none, to the root.
func (a *Application) fireMouseActions(event *tcell.EventMouse) (handled bool) {
	x, y := event.Position()
	for _, action := range a.mouse.actions(x, y, event.Buttons(), time.Now()) {
		primitive := a.mouseCapture
		if primitive == nil {
			a.RLock()
			primitive = a.root
			a.RUnlock()
		}
		if primitive == nil {
			continue
		}

		capture, cmd := primitive.MouseHandler(action, event)
		a.mouseCapture = capture
		if a.executeCommand(cmd) {
			handled = true
		}
	}
	return handled
}

// Stop stops the application, causing Run() to return.
func (a *Application) Stop() {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		return
	}
	a.screen.Fini()
	a.screen = nil
}

// draw lays the root out over the whole screen and draws it.
func (a *Application) draw() {
	a.Lock()
	screen := a.screen
	root := a.root
	forceRedraw := a.forceRedraw
	a.forceRedraw = false
	a.Unlock()

	if screen == nil || root == nil {
		return
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	if forceRedraw {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
}

// SetRoot sets the root primitive for this application and gives it the
// focus. This function must be called at least once or nothing will be
// displayed when the application starts.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	if a.screen != nil {
		a.forceRedraw = true
	}
	a.Unlock()

	a.SetFocus(root)
	return a
}

// SetFocus sets the focus to a new primitive. Blur() is called on the
// previously focused primitive, Focus() on the new one. Nothing happens if p
// already has the focus.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	if a.focus == p {
		a.Unlock()
		return a
	}
	previous := a.focus
	a.focus = p
	a.Unlock()

	if previous != nil {
		previous.Blur()
	}
	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}
	return a
}

// GetFocus returns the primitive which has the current focus. If none has it,
// nil is returned.
func (a *Application) GetFocus() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.focus
}

// executeCommand runs cmd and returns whether the screen needs a redraw.
func (a *Application) executeCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case BatchCommand:
		redraw := false
		for _, item := range c {
			if a.executeCommand(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
	case SetFocusCommand:
		if c.Target == nil {
			return false
		}
		a.RLock()
		changed := a.focus != c.Target
		a.RUnlock()
		a.SetFocus(c.Target)
		return changed
	case ConsumeEventCommand:
	}
	return false
}
