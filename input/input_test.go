package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/greenglade/glade"
)

const KeyA = ebiten.KeyA

// These tests exercise the edge-detection logic directly against the
// internal snapshot maps rather than through Poll, since Poll talks to a
// live Ebitengine runtime that isn't available in a headless test binary.

func TestKeyJustPressedAndHeld(t *testing.T) {
	s := New()
	s.prevKeys[KeyA] = false
	s.curKeys[KeyA] = true

	if !s.IsKeyJustPressed(KeyA) {
		t.Fatalf("expected just-pressed on first down frame")
	}
	if !s.IsKeyHeld(KeyA) {
		t.Fatalf("expected held while down")
	}
	if s.IsKeyJustReleased(KeyA) {
		t.Fatalf("did not expect just-released while held")
	}

	// advance one frame: still down
	s.prevKeys, s.curKeys = s.curKeys, s.prevKeys
	for k := range s.curKeys {
		delete(s.curKeys, k)
	}
	s.curKeys[KeyA] = true

	if s.IsKeyJustPressed(KeyA) {
		t.Fatalf("should not be just-pressed on the second held frame")
	}
	if !s.IsKeyHeld(KeyA) {
		t.Fatalf("expected still held")
	}
}

func TestKeyJustReleased(t *testing.T) {
	s := New()
	s.prevKeys[KeyA] = true
	// curKeys has no entry for KeyA -> released

	if !s.IsKeyJustReleased(KeyA) {
		t.Fatalf("expected just-released")
	}
	if s.IsKeyHeld(KeyA) {
		t.Fatalf("should not be held after release")
	}
}

func TestMouseEdgeDetection(t *testing.T) {
	s := New()
	s.prevMouse[mouseSlot(MouseButtonLeft)] = false
	s.curMouse[mouseSlot(MouseButtonLeft)] = true

	if !s.IsMouseJustPressed(MouseButtonLeft) {
		t.Fatalf("expected just-pressed")
	}
	if !s.IsMouseHeld(MouseButtonLeft) {
		t.Fatalf("expected held")
	}

	s.prevMouse[mouseSlot(MouseButtonLeft)] = true
	s.curMouse[mouseSlot(MouseButtonLeft)] = false

	if !s.IsMouseJustReleased(MouseButtonLeft) {
		t.Fatalf("expected just-released")
	}
}

func TestMouseDeltaTracksCursorMovementAcrossFrames(t *testing.T) {
	s := New()
	s.cursor = glade.Vec2{X: 10, Y: 10}
	s.polled = true

	if dx, dy := s.MouseDelta(); dx != 0 || dy != 0 {
		t.Fatalf("expected zero delta before any movement, got (%v, %v)", dx, dy)
	}

	s.prevCursor = s.cursor
	s.cursor = glade.Vec2{X: 25, Y: 4}

	dx, dy := s.MouseDelta()
	if dx != 15 || dy != -6 {
		t.Fatalf("expected delta (15, -6), got (%v, %v)", dx, dy)
	}
}

func TestComputeModifiersDetectsEitherSideOfAPair(t *testing.T) {
	mods := computeModifiers(map[Key]bool{ebiten.KeyShiftRight: true, ebiten.KeyAltLeft: true})
	if !mods.Shift || !mods.Alt || mods.Control || mods.Meta {
		t.Fatalf("unexpected modifiers: %+v", mods)
	}
}
