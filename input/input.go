// Package input turns Ebitengine's polled keyboard/mouse state into an
// edge-detected snapshot: current, just-pressed and just-released. Ebitengine
// exposes no push-based key/button events, only "is this down right now"
// queries, so the state machine here hand-rolls edge detection by diffing
// polled state frame to frame instead of trusting a host-provided event
// queue.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/greenglade/glade"
)

// MouseButton mirrors ebiten.MouseButton so callers don't need to import
// Ebitengine directly just to name a button.
type MouseButton = ebiten.MouseButton

const (
	MouseButtonLeft   = ebiten.MouseButtonLeft
	MouseButtonRight  = ebiten.MouseButtonRight
	MouseButtonMiddle = ebiten.MouseButtonMiddle
)

// Key mirrors ebiten.Key.
type Key = ebiten.Key

// Modifiers is the set of modifier keys held during the current frame,
// sampled alongside keys/buttons each Poll.
type Modifiers struct {
	Shift, Control, Alt, Meta bool
}

// State is a per-frame input snapshot built by Poll. It must be polled
// exactly once per host frame, before any fixed-tick systems run, so every
// tick within the same frame sees a consistent input snapshot.
type State struct {
	curKeys  map[Key]bool
	prevKeys map[Key]bool

	curMouse  [3]bool
	prevMouse [3]bool

	cursor     glade.Vec2
	prevCursor glade.Vec2
	scrollX    float64
	scrollY    float64
	mods       Modifiers

	keyBuf []Key
	polled bool
}

// New returns an empty input snapshot.
func New() *State {
	return &State{
		curKeys:  make(map[Key]bool),
		prevKeys: make(map[Key]bool),
	}
}

// Poll samples Ebitengine's current input state, rotating the previous
// snapshot so just-pressed/just-released can be derived by comparison.
func (s *State) Poll() {
	s.prevKeys, s.curKeys = s.curKeys, s.prevKeys
	for k := range s.curKeys {
		delete(s.curKeys, k)
	}
	s.keyBuf = ebiten.AppendPressedKeys(s.keyBuf[:0])
	for _, k := range s.keyBuf {
		s.curKeys[k] = true
	}

	s.prevMouse = s.curMouse
	s.curMouse[0] = ebiten.IsMouseButtonPressed(MouseButtonLeft)
	s.curMouse[1] = ebiten.IsMouseButtonPressed(MouseButtonRight)
	s.curMouse[2] = ebiten.IsMouseButtonPressed(MouseButtonMiddle)

	cx, cy := ebiten.CursorPosition()
	next := glade.Vec2{X: float64(cx), Y: float64(cy)}
	if s.polled {
		s.prevCursor = s.cursor
	} else {
		s.prevCursor = next
		s.polled = true
	}
	s.cursor = next
	s.scrollX, s.scrollY = ebiten.Wheel()

	s.mods = computeModifiers(s.curKeys)
}

func computeModifiers(keys map[Key]bool) Modifiers {
	return Modifiers{
		Shift:   keys[ebiten.KeyShiftLeft] || keys[ebiten.KeyShiftRight],
		Control: keys[ebiten.KeyControlLeft] || keys[ebiten.KeyControlRight],
		Alt:     keys[ebiten.KeyAltLeft] || keys[ebiten.KeyAltRight],
		Meta:    keys[ebiten.KeyMetaLeft] || keys[ebiten.KeyMetaRight],
	}
}

// ModifierKeys returns which modifier keys are currently held.
func (s *State) ModifierKeys() Modifiers { return s.mods }

// IsKeyHeld reports whether k is currently down (pressed this frame or
// before).
func (s *State) IsKeyHeld(k Key) bool { return s.curKeys[k] }

// IsKeyJustPressed reports whether k transitioned from up to down this frame.
func (s *State) IsKeyJustPressed(k Key) bool { return s.curKeys[k] && !s.prevKeys[k] }

// IsKeyJustReleased reports whether k transitioned from down to up this
// frame.
func (s *State) IsKeyJustReleased(k Key) bool { return !s.curKeys[k] && s.prevKeys[k] }

func mouseSlot(b MouseButton) int {
	switch b {
	case MouseButtonLeft:
		return 0
	case MouseButtonRight:
		return 1
	default:
		return 2
	}
}

// IsMouseHeld reports whether b is currently down.
func (s *State) IsMouseHeld(b MouseButton) bool { return s.curMouse[mouseSlot(b)] }

// IsMouseJustPressed reports whether b transitioned from up to down this
// frame.
func (s *State) IsMouseJustPressed(b MouseButton) bool {
	slot := mouseSlot(b)
	return s.curMouse[slot] && !s.prevMouse[slot]
}

// IsMouseJustReleased reports whether b transitioned from down to up this
// frame.
func (s *State) IsMouseJustReleased(b MouseButton) bool {
	slot := mouseSlot(b)
	return !s.curMouse[slot] && s.prevMouse[slot]
}

// CursorPosition returns the mouse position in window pixel coordinates.
func (s *State) CursorPosition() glade.Vec2 { return s.cursor }

// ScrollDelta returns the mouse wheel delta sampled this frame.
func (s *State) ScrollDelta() (dx, dy float64) { return s.scrollX, s.scrollY }

// MouseDelta returns how far the cursor moved since the previous Poll, in
// window pixels. Zero on the first frame, since there is no previous
// position to diff against.
func (s *State) MouseDelta() (dx, dy float64) {
	return s.cursor.X - s.prevCursor.X, s.cursor.Y - s.prevCursor.Y
}
