package glade

import "github.com/greenglade/glade/ecs"

// GameHour is the current in-game time of day, in [0,24), stored as a
// resource so any system (and the day-night sampler) can read it without
// threading a parameter through every call.
type GameHour float64

// DayLengthSeconds is the default real-time length of one full 24-hour game
// cycle: five real minutes per in-game day, a common top-down-RPG pace.
const DayLengthSeconds = 300.0

// AdvanceGameHour returns a System (registered via Orchestrator.AddSystem)
// that advances the world's GameHour resource by dt, wrapping at 24, at the
// rate implied by dayLengthSeconds: how many real seconds a full in-game day
// takes. A host can swap in its own producer by not registering this system
// and setting GameHour itself instead.
func AdvanceGameHour(dayLengthSeconds float64) System {
	ratePerSecond := 24.0 / dayLengthSeconds
	return func(w *ecs.World, dt float64) {
		hour, _ := ecs.GetResource[GameHour](w)
		hour += GameHour(dt * ratePerSecond)
		for hour >= 24 {
			hour -= 24
		}
		ecs.SetResource(w, hour)
	}
}

// DayNightColor is the resource the render pass clears the screen with and
// systems can sample for ambient tinting. Four stops cover a 24-hour cycle;
// Sample piecewise-linearly interpolates between whichever two stops
// bracket the current hour.
type DayNightColor struct {
	Dawn, Noon, Dusk, Midnight Color
}

// DefaultDayNight gives a plausible warm-dawn, bright-noon, orange-dusk,
// deep-blue-midnight cycle a host can use as-is or override per stop.
func DefaultDayNight() DayNightColor {
	return DayNightColor{
		Dawn:     Color{R: 1.0, G: 0.8, B: 0.65, A: 1},
		Noon:     Color{R: 1.0, G: 1.0, B: 1.0, A: 1},
		Dusk:     Color{R: 1.0, G: 0.55, B: 0.35, A: 1},
		Midnight: Color{R: 0.12, G: 0.14, B: 0.28, A: 1},
	}
}

// Sample interpolates the cycle at hour, a game-clock value in [0,24): stops
// sit at 6 (dawn), 12 (noon), 18 (dusk) and 0/24 (midnight), each segment
// between them lerped linearly.
func (d DayNightColor) Sample(hour float64) Color {
	for hour < 0 {
		hour += 24
	}
	for hour >= 24 {
		hour -= 24
	}
	switch {
	case hour < 6:
		return d.Midnight.Lerp(d.Dawn, hour/6)
	case hour < 12:
		return d.Dawn.Lerp(d.Noon, (hour-6)/6)
	case hour < 18:
		return d.Noon.Lerp(d.Dusk, (hour-12)/6)
	default:
		return d.Dusk.Lerp(d.Midnight, (hour-18)/6)
	}
}
