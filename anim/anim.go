// Package anim samples time-driven sprite animations: an ordered list of
// frames, each a UV rect held for a duration, looped by elapsed time modulo
// the clip's total duration. The sampling rule accumulates per-frame
// durations until the elapsed-time-modulo-total remainder falls inside one,
// lifted out into a standalone per-sprite animation clip instead of being
// wired directly into the tile renderer.
package anim

import "github.com/greenglade/glade"

// Frame is one step of a Clip: the sprite's texture region for this frame's
// duration.
type Frame struct {
	Region   glade.Rect // UV or atlas-pixel rect, interpreted by the renderer
	Duration float64    // seconds this frame is shown
}

// Clip is an ordered sequence of frames, either looping (elapsed time wraps
// modulo the total duration) or one-shot (elapsed time clamps to the last
// frame once it reaches the total).
type Clip struct {
	Frames  []Frame
	Looping bool
	total   float64
}

// NewClip precomputes the clip's total duration for the sampler. looping
// selects whether FrameAt wraps past the total duration (a walk or idle
// cycle) or holds the last frame (a one-shot attack or crop-growth clip).
func NewClip(frames []Frame, looping bool) *Clip {
	c := &Clip{Frames: frames, Looping: looping}
	for _, f := range frames {
		c.total += f.Duration
	}
	return c
}

// TotalDuration returns the sum of every frame's duration.
func (c *Clip) TotalDuration() float64 { return c.total }

// FrameAt returns the frame whose duration window contains t, where t is
// elapsed-time-since-clip-start. A looping clip wraps t modulo the total
// duration; a non-looping clip clamps t >= total to the last frame. A clip
// with zero total duration (no frames, or all-zero durations) always
// returns the first frame, or the zero Frame if there are none.
func (c *Clip) FrameAt(t float64) Frame {
	if len(c.Frames) == 0 {
		return Frame{}
	}
	if c.total <= 0 {
		return c.Frames[0]
	}
	if !c.Looping {
		if t < 0 {
			t = 0
		}
		if t >= c.total {
			return c.Frames[len(c.Frames)-1]
		}
	} else {
		for t < 0 {
			t += c.total
		}
		t = mod(t, c.total)
	}
	var acc float64
	for _, f := range c.Frames {
		acc += f.Duration
		if t < acc {
			return f
		}
	}
	return c.Frames[len(c.Frames)-1]
}

func mod(a, b float64) float64 {
	r := a
	for r >= b {
		r -= b
	}
	return r
}

// Cursor tracks elapsed playback time for one animated instance, so many
// entities can share a single Clip without each needing its own frame index.
type Cursor struct {
	clip    *Clip
	elapsed float64
	Playing bool
	Speed   float64 // playback rate multiplier; 1 is normal speed
}

// NewCursor returns a cursor playing clip from time zero at normal speed.
func NewCursor(clip *Clip) *Cursor {
	return &Cursor{clip: clip, Playing: true, Speed: 1}
}

// SetClip switches the cursor to a new clip and resets elapsed time, the
// usual behavior when an entity changes animation state (idle -> walk).
func (c *Cursor) SetClip(clip *Clip) {
	if c.clip == clip {
		return
	}
	c.clip = clip
	c.elapsed = 0
}

// Advance steps the cursor forward by dt*Speed seconds when playing.
func (c *Cursor) Advance(dt float64) {
	if !c.Playing {
		return
	}
	c.elapsed += dt * c.Speed
}

// Frame returns the clip's current frame for the cursor's elapsed time.
func (c *Cursor) Frame() Frame {
	if c.clip == nil {
		return Frame{}
	}
	return c.clip.FrameAt(c.elapsed)
}

// Reset zeroes elapsed time without changing the clip.
func (c *Cursor) Reset() { c.elapsed = 0 }
