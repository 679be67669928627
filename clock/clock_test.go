package clock

import "testing"

func TestStepProducesExpectedTickCount(t *testing.T) {
	c := New()
	ticks := c.Step(FixedStep * 3.5)
	if ticks != 3 {
		t.Fatalf("expected 3 ticks, got %d", ticks)
	}
	if c.Alpha() < 0.45 || c.Alpha() > 0.55 {
		t.Fatalf("expected alpha near 0.5, got %v", c.Alpha())
	}
}

func TestStepClampsMaxDelta(t *testing.T) {
	c := New()
	ticks := c.Step(10.0) // far beyond MaxDelta
	// The clamped delta holds MaxDelta/FixedStep = 15 ticks of time: 8 run
	// (TickCeiling) and the rest are dropped, none of the unclamped 10s.
	if ticks != TickCeiling {
		t.Fatalf("expected tick count capped at %d, got %d", TickCeiling, ticks)
	}
	want := int(MaxDelta / FixedStep)
	if got := ticks + int(c.DroppedTicks); got != want {
		t.Fatalf("expected clamped tick budget %d (run + dropped), got %d", want, got)
	}
}

func TestStepRespectsTickCeiling(t *testing.T) {
	c := New()
	// MaxDelta/FixedStep = 15 > TickCeiling(8), so the ceiling is the
	// binding constraint, not the max-delta clamp.
	ticks := c.Step(MaxDelta)
	if ticks != TickCeiling {
		t.Fatalf("expected ceiling of %d ticks, got %d", TickCeiling, ticks)
	}
	if c.DroppedTicks == 0 {
		t.Fatalf("expected dropped ticks to be recorded")
	}
}

func TestAccumulatorCarriesRemainder(t *testing.T) {
	c := New()
	c.Step(FixedStep * 1.25)
	ticks := c.Step(0)
	if ticks != 0 {
		t.Fatalf("expected no extra tick from a zero-delta frame, got %d", ticks)
	}
	if c.Alpha() < 0.2 || c.Alpha() > 0.3 {
		t.Fatalf("expected leftover alpha near 0.25, got %v", c.Alpha())
	}
}

func TestNegativeDeltaTreatedAsZero(t *testing.T) {
	c := New()
	ticks := c.Step(-1)
	if ticks != 0 || c.Alpha() != 0 {
		t.Fatalf("expected no ticks and zero alpha for negative delta, got ticks=%d alpha=%v", ticks, c.Alpha())
	}
}

func TestTotalTicksAccumulatesAcrossSteps(t *testing.T) {
	c := New()
	c.Step(FixedStep)
	c.Step(FixedStep * 2)
	if c.TotalTicks != 3 {
		t.Fatalf("expected 3 total ticks, got %d", c.TotalTicks)
	}
	if c.FramesRun != 2 {
		t.Fatalf("expected 2 frames run, got %d", c.FramesRun)
	}
}
