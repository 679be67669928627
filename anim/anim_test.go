package anim

import (
	"math"
	"testing"

	"github.com/greenglade/glade"
)

func rectN(n float64) glade.Rect {
	return glade.Rect{X: n, Width: 16, Height: 16}
}

func walkClip() *Clip {
	return NewClip([]Frame{
		{Region: rectN(0), Duration: 0.1},
		{Region: rectN(1), Duration: 0.1},
		{Region: rectN(2), Duration: 0.1},
	}, true)
}

func attackClip() *Clip {
	return NewClip([]Frame{
		{Region: rectN(0), Duration: 0.1},
		{Region: rectN(1), Duration: 0.1},
		{Region: rectN(2), Duration: 0.1},
	}, false)
}

func TestFrameAtSelectsCorrectFrame(t *testing.T) {
	c := walkClip()
	if f := c.FrameAt(0.05); f.Region != rectN(0) {
		t.Fatalf("expected frame 0 at t=0.05, got %+v", f)
	}
	if f := c.FrameAt(0.15); f.Region != rectN(1) {
		t.Fatalf("expected frame 1 at t=0.15, got %+v", f)
	}
	if f := c.FrameAt(0.25); f.Region != rectN(2) {
		t.Fatalf("expected frame 2 at t=0.25, got %+v", f)
	}
}

func TestFrameAtLoopsOnTotalDuration(t *testing.T) {
	c := walkClip()
	total := c.TotalDuration()
	if math.Abs(total-0.3) > 1e-12 {
		t.Fatalf("expected total duration 0.3, got %v", total)
	}
	f := c.FrameAt(total + 0.05)
	if f.Region != rectN(0) {
		t.Fatalf("expected wraparound to frame 0, got %+v", f)
	}
}

func TestFrameAtNegativeElapsedWraps(t *testing.T) {
	c := walkClip()
	f := c.FrameAt(-0.05)
	if f.Region != rectN(2) {
		t.Fatalf("expected negative elapsed to wrap to last frame, got %+v", f)
	}
}

func TestEmptyClipReturnsZeroFrame(t *testing.T) {
	c := NewClip(nil, true)
	if f := c.FrameAt(1); f != (Frame{}) {
		t.Fatalf("expected zero frame for empty clip, got %+v", f)
	}
}

func TestFrameAtNonLoopingClampsAtEnd(t *testing.T) {
	c := attackClip()
	total := c.TotalDuration()
	if f := c.FrameAt(total); f.Region != rectN(2) {
		t.Fatalf("expected last frame at t==total, got %+v", f)
	}
	if f := c.FrameAt(total + 10); f.Region != rectN(2) {
		t.Fatalf("expected last frame held well past total, got %+v", f)
	}
	if f := c.FrameAt(0.05); f.Region != rectN(0) {
		t.Fatalf("expected frame 0 mid-clip, got %+v", f)
	}
}

func TestCursorSpeedMultipliesElapsed(t *testing.T) {
	cur := NewCursor(walkClip())
	cur.Speed = 2
	cur.Advance(0.075)
	if f := cur.Frame(); f.Region != rectN(1) {
		t.Fatalf("expected frame 1 after advancing 0.075s at 2x speed, got %+v", f)
	}
}

func TestCursorAdvanceAndSetClip(t *testing.T) {
	clip := walkClip()
	cur := NewCursor(clip)
	cur.Advance(0.15)
	if f := cur.Frame(); f.Region != rectN(1) {
		t.Fatalf("expected frame 1 after advancing 0.15s, got %+v", f)
	}

	idle := NewClip([]Frame{{Region: rectN(9), Duration: 1}}, true)
	cur.SetClip(idle)
	if f := cur.Frame(); f.Region != rectN(9) {
		t.Fatalf("expected idle frame immediately after SetClip, got %+v", f)
	}
}

func TestCursorNotPlayingDoesNotAdvance(t *testing.T) {
	cur := NewCursor(walkClip())
	cur.Playing = false
	cur.Advance(1.0)
	if f := cur.Frame(); f.Region != rectN(0) {
		t.Fatalf("expected paused cursor to stay on frame 0, got %+v", f)
	}
}
