// Package clock implements the fixed-timestep accumulator that decouples
// simulation rate from the host's variable frame rate: FixedStep ticks are
// produced from whatever raw wall-clock delta the host reports, clamped and
// capped so a stalled host (breakpoint, window drag) can't make the
// simulation try to "catch up" by running thousands of ticks at once.
package clock

import "time"

const (
	// FixedStep is the simulation tick length: 60 updates per simulated
	// second, independent of the host's render rate.
	FixedStep = 1.0 / 60.0
	// MaxDelta caps the raw per-frame delta fed into the accumulator. A
	// single host frame can never inject more than this much simulated
	// time, however long it actually took.
	MaxDelta = 0.25
	// TickCeiling is the most fixed ticks a single Step call will ever
	// report; beyond it the accumulator is drained without running the
	// extra ticks, so a sustained stall degrades to slow motion rather
	// than a death-spiral of catch-up ticks.
	TickCeiling = 8
)

// Clock accumulates wall-clock time into fixed-size simulation ticks and
// tracks basic frame statistics.
type Clock struct {
	accumulator float64
	alpha       float64

	lastHostFrame time.Time
	started       bool

	TotalTicks   uint64
	FramesRun    uint64
	DroppedTicks uint64 // ticks the accumulator discarded after hitting TickCeiling
}

// New returns a clock with an empty accumulator.
func New() *Clock {
	return &Clock{}
}

// Step feeds a raw host-measured delta (seconds since the previous host
// frame) into the accumulator and returns how many fixed ticks the caller
// should run this frame. Run that many ticks in order, then read Alpha()
// for the remainder to use when interpolating render state.
func (c *Clock) Step(dtRaw float64) int {
	if dtRaw < 0 {
		dtRaw = 0
	}
	if dtRaw > MaxDelta {
		dtRaw = MaxDelta
	}
	c.accumulator += dtRaw
	c.FramesRun++

	ticks := 0
	for c.accumulator >= FixedStep && ticks < TickCeiling {
		c.accumulator -= FixedStep
		ticks++
	}
	if c.accumulator >= FixedStep {
		// Ceiling reached with time still left over: drop the rest rather
		// than letting the backlog grow without bound.
		dropped := int(c.accumulator / FixedStep)
		c.DroppedTicks += uint64(dropped)
		c.accumulator -= float64(dropped) * FixedStep
	}
	c.TotalTicks += uint64(ticks)
	c.alpha = c.accumulator / FixedStep
	return ticks
}

// Alpha returns the fraction, in [0,1), of a fixed tick left over in the
// accumulator after the most recent Step — the weight to use when
// interpolating between a component's previous and current tick state for
// rendering.
func (c *Clock) Alpha() float64 { return c.alpha }

// StepWithHostTime is a convenience wrapper around Step for callers that
// only have wall-clock timestamps (e.g. Ebitengine's Update, which carries
// no dt parameter): it derives dtRaw from time.Now() minus the timestamp of
// the previous call, treating the very first call as a zero-delta frame.
func (c *Clock) StepWithHostTime(now time.Time) int {
	if !c.started {
		c.started = true
		c.lastHostFrame = now
		return c.Step(0)
	}
	dt := now.Sub(c.lastHostFrame).Seconds()
	c.lastHostFrame = now
	return c.Step(dt)
}
