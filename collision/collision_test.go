package collision

import (
	"testing"

	"github.com/greenglade/glade"
	"github.com/greenglade/glade/tilemap"
)

func TestResolvePairSolidVsSolidDisplacesMover(t *testing.T) {
	aPos := glade.Vec2{X: 0, Y: 0}
	aVel := glade.Vec2{X: 5, Y: 0}
	bPos := glade.Vec2{X: 9, Y: 0} // half-extents 5 each: overlap 1 on X

	a := Body[int]{ID: 1, Position: &aPos, Velocity: &aVel, Collider: Collider{HalfExtent: glade.Vec2{X: 5, Y: 5}, Kind: Solid}}
	b := Body[int]{ID: 2, Position: &bPos, Velocity: nil, Collider: Collider{HalfExtent: glade.Vec2{X: 5, Y: 5}, Kind: Solid}}

	event, displaced := ResolvePair(a, b)
	if event != nil {
		t.Fatalf("expected no trigger event for solid/solid, got %+v", event)
	}
	if !displaced {
		t.Fatalf("expected displacement")
	}
	if bPos.X != 9 {
		t.Fatalf("static body b should not move, got %+v", bPos)
	}
	if aVel.X != 0 {
		t.Fatalf("expected mover's velocity zeroed along MTV axis, got %+v", aVel)
	}
	// a was pushed away from b's center (which is to a's +X side), so a's
	// X position must have decreased.
	if aPos.X >= 0 {
		t.Fatalf("expected a pushed in -X direction, got %+v", aPos)
	}
}

func TestResolvePairSplitsDisplacementWhenBothMove(t *testing.T) {
	aPos := glade.Vec2{X: 0, Y: 0}
	aVel := glade.Vec2{X: 1, Y: 0}
	bPos := glade.Vec2{X: 9, Y: 0}
	bVel := glade.Vec2{X: -1, Y: 0}

	a := Body[int]{ID: 1, Position: &aPos, Velocity: &aVel, Collider: Collider{HalfExtent: glade.Vec2{X: 5, Y: 5}, Kind: Solid}}
	b := Body[int]{ID: 2, Position: &bPos, Velocity: &bVel, Collider: Collider{HalfExtent: glade.Vec2{X: 5, Y: 5}, Kind: Solid}}

	_, displaced := ResolvePair(a, b)
	if !displaced {
		t.Fatalf("expected displacement")
	}
	if aPos.X >= 0 || bPos.X <= 9 {
		t.Fatalf("expected both bodies pushed apart, got a=%+v b=%+v", aPos, bPos)
	}
}

func TestResolvePairTriggerVsSolidEmitsEventNoDisplacement(t *testing.T) {
	aPos := glade.Vec2{X: 0, Y: 0}
	bPos := glade.Vec2{X: 9, Y: 0}
	a := Body[string]{ID: "player", Position: &aPos, Velocity: &glade.Vec2{}, Collider: Collider{HalfExtent: glade.Vec2{X: 5, Y: 5}, Kind: Solid}}
	b := Body[string]{ID: "zone", Position: &bPos, Collider: Collider{HalfExtent: glade.Vec2{X: 5, Y: 5}, Kind: Trigger}}

	event, displaced := ResolvePair(a, b)
	if displaced {
		t.Fatalf("trigger/solid pairs must never displace")
	}
	if event == nil || event.Solid != "player" || event.Trigger != "zone" {
		t.Fatalf("expected trigger event naming solid=player trigger=zone, got %+v", event)
	}
	if aPos.X != 0 || bPos.X != 9 {
		t.Fatalf("positions must be untouched on a trigger overlap, got a=%+v b=%+v", aPos, bPos)
	}
}

func TestResolvePairNoOverlapReturnsNothing(t *testing.T) {
	aPos := glade.Vec2{X: 0, Y: 0}
	bPos := glade.Vec2{X: 100, Y: 100}
	a := Body[int]{ID: 1, Position: &aPos, Collider: Collider{HalfExtent: glade.Vec2{X: 1, Y: 1}, Kind: Solid}}
	b := Body[int]{ID: 2, Position: &bPos, Collider: Collider{HalfExtent: glade.Vec2{X: 1, Y: 1}, Kind: Solid}}

	event, displaced := ResolvePair(a, b)
	if event != nil || displaced {
		t.Fatalf("expected no resolution for non-overlapping boxes")
	}
}

// TestResolvePairTieBreakPrefersYAxis covers the tie-break rule: when
// x-overlap equals y-overlap, the y axis is preferred, biasing stacking for
// top-down movement. glade.AABB.Penetration already implements this; this
// pins that behavior from the collision package's own entry point rather
// than only from math_test.go.
func TestResolvePairTieBreakPrefersYAxis(t *testing.T) {
	aPos := glade.Vec2{X: 0, Y: 0}
	aVel := glade.Vec2{X: 1, Y: 1}
	bPos := glade.Vec2{X: 1, Y: 1} // equal 1-unit overlap on both axes
	a := Body[int]{ID: 1, Position: &aPos, Velocity: &aVel, Collider: Collider{HalfExtent: glade.Vec2{X: 1, Y: 1}, Kind: Solid}}
	b := Body[int]{ID: 2, Position: &bPos, Collider: Collider{HalfExtent: glade.Vec2{X: 1, Y: 1}, Kind: Solid}}

	ResolvePair(a, b)
	if aVel.Y != 0 || aVel.X == 0 {
		t.Fatalf("expected the Y component zeroed (tie prefers Y axis), got %+v", aVel)
	}
}

func TestResolveAgainstTilemapPushesOutOfSolidTile(t *testing.T) {
	collision := make([]bool, 16)
	collision[1*4+1] = true // tile (1,1) solid
	m := &tilemap.Tilemap{Width: 4, Height: 4, TileSize: 16, Collision: collision}

	pos := glade.Vec2{X: 20, Y: 20} // inside tile (1,1), bounds (16,16)-(32,32)
	vel := glade.Vec2{X: 3, Y: 0}
	moved := ResolveAgainstTilemap(m, &pos, &vel, glade.Vec2{X: 2, Y: 2}, 4)
	if !moved {
		t.Fatalf("expected displacement out of the solid tile")
	}
	box := glade.NewAABB(pos, glade.Vec2{X: 2, Y: 2})
	if box.Intersects(m.TileBounds(1, 1)) {
		t.Fatalf("expected box fully clear of the solid tile after resolution, got %+v", box)
	}
}

func TestResolveAgainstTilemapNoOpWhenClear(t *testing.T) {
	m := &tilemap.Tilemap{Width: 4, Height: 4, TileSize: 16, Collision: make([]bool, 16)}
	pos := glade.Vec2{X: 20, Y: 20}
	moved := ResolveAgainstTilemap(m, &pos, nil, glade.Vec2{X: 2, Y: 2}, 4)
	if moved {
		t.Fatalf("expected no displacement when no tile is solid")
	}
}

func TestTriggersOverlapping(t *testing.T) {
	m := &tilemap.Tilemap{
		Width: 4, Height: 4, TileSize: 16,
		Triggers: []tilemap.Trigger{
			{Bounds: glade.AABB{Min: glade.Vec2{X: 0, Y: 0}, Max: glade.Vec2{X: 16, Y: 16}}, TargetMap: "cave", TargetSpawn: "entrance"},
			{Bounds: glade.AABB{Min: glade.Vec2{X: 100, Y: 100}, Max: glade.Vec2{X: 116, Y: 116}}, TargetMap: "far", TargetSpawn: "away"},
		},
	}
	hits := TriggersOverlapping(m, glade.AABB{Min: glade.Vec2{X: 4, Y: 4}, Max: glade.Vec2{X: 12, Y: 12}})
	if len(hits) != 1 || hits[0].TargetMap != "cave" {
		t.Fatalf("expected only the near trigger to match, got %+v", hits)
	}
}
