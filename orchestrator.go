package glade

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/greenglade/glade/camera"
	"github.com/greenglade/glade/clock"
	"github.com/greenglade/glade/ecs"
	"github.com/greenglade/glade/input"
	"github.com/greenglade/glade/render"
)

// System is one fixed-tick unit of simulation logic: given the world and
// the fixed step length (always clock.FixedStep), it may read and write any
// component or resource.
type System func(w *ecs.World, dt float64)

// SpriteBuilder turns the current world state into this frame's draw list.
// alpha is the fixed-tick interpolation remainder from clock.Clock.Alpha,
// for components carrying PrevPosition/Position pairs to lerp by.
type SpriteBuilder func(w *ecs.World, alpha float64) []render.Sprite

// Orchestrator is the engine-to-host glue: it implements ebiten.Game,
// driving input polling, the fixed-timestep accumulator, registered systems
// and the render passes each host frame.
type Orchestrator struct {
	World    *ecs.World
	Clock    *clock.Clock
	Input    *input.State
	Camera   *camera.Camera
	Renderer *render.Renderer

	systems       []System
	buildSprites  SpriteBuilder
	screenW       int
	screenH       int
	worldSprites  []render.Sprite
	uiSprites     []render.Sprite
	lastHostFrame time.Time
}

// NewOrchestrator wires together a fresh world, clock, input snapshot,
// camera sized to the given screen, and renderer.
func NewOrchestrator(screenW, screenH int) *Orchestrator {
	return &Orchestrator{
		World:    ecs.NewWorld(),
		Clock:    clock.New(),
		Input:    input.New(),
		Camera:   camera.New(float64(screenW), float64(screenH)),
		Renderer: render.NewRenderer(),
		screenW:  screenW,
		screenH:  screenH,
	}
}

// AddSystem registers s to run once per fixed tick, in registration order:
// a single logical thread with deterministic ordering, no concurrent
// system execution within a tick.
func (o *Orchestrator) AddSystem(s System) {
	o.systems = append(o.systems, s)
}

// SetSpriteBuilder installs the function that turns world state into this
// frame's draw list.
func (o *Orchestrator) SetSpriteBuilder(fn SpriteBuilder) {
	o.buildSprites = fn
}

// Update implements ebiten.Game: it samples input once, advances the fixed
// accumulator from wall-clock time, and runs every system once per produced
// tick, in registration order.
func (o *Orchestrator) Update() error {
	o.Input.Poll()

	now := time.Now()
	var dtRaw float64
	if o.lastHostFrame.IsZero() {
		dtRaw = 0
	} else {
		dtRaw = now.Sub(o.lastHostFrame).Seconds()
	}
	o.lastHostFrame = now

	ticks := o.Clock.Step(dtRaw)
	for i := 0; i < ticks; i++ {
		for _, sys := range o.systems {
			sys(o.World, clock.FixedStep)
		}
	}
	if ticks > 0 {
		o.Camera.Update(float64(ticks) * clock.FixedStep)
	}
	return nil
}

// Draw implements ebiten.Game: it builds this frame's sprite list, projects
// world-space sprites through the camera, and submits the world pass then
// the UI pass.
func (o *Orchestrator) Draw(screen *ebiten.Image) {
	if o.buildSprites == nil {
		return
	}
	sprites := o.buildSprites(o.World, o.Clock.Alpha())

	o.worldSprites = o.worldSprites[:0]
	o.uiSprites = o.uiSprites[:0]
	for _, s := range sprites {
		if s.Layer == render.LayerUI {
			o.uiSprites = append(o.uiSprites, s)
		} else {
			o.worldSprites = append(o.worldSprites, s)
		}
	}

	clearColor := ColorWhite
	if dn, ok := ecs.GetResource[DayNightColor](o.World); ok {
		if hour, ok := ecs.GetResource[GameHour](o.World); ok {
			clearColor = dn.Sample(float64(hour))
		}
	}
	render.ClearColor(screen, clearColor)

	render.ApplyViewProjection(o.worldSprites, render.UniformBuffer{ViewProjection: o.Camera.ViewMatrix()})
	render.ApplyViewProjection(o.uiSprites, render.IdentityUniformBuffer(float64(o.screenW), float64(o.screenH)))
	o.Renderer.WorldPass(screen, o.worldSprites)
	o.Renderer.UIPass(screen, o.uiSprites)
}

// Layout implements ebiten.Game with a fixed logical resolution — the host
// window may scale it, but the simulation always renders at screenW x screenH.
func (o *Orchestrator) Layout(outsideWidth, outsideHeight int) (int, int) {
	return o.screenW, o.screenH
}
