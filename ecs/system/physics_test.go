package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/geom"
	"github.com/milk9111/platformer/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrateFallsWithoutBound(t *testing.T) {
	b := &component.Body{Rect: geom.Rect{Width: 50, Height: 100}, Gravity: gravity, Grounded: true}
	lastY, lastVel := b.Rect.Y, b.VelY
	for i := 0; i < 1000; i++ {
		Integrate(b)
		assert.False(t, b.Grounded)
		assert.Greater(t, b.Rect.Y, lastY)
		assert.Greater(t, b.VelY, lastVel)
		lastY, lastVel = b.Rect.Y, b.VelY
	}
	assert.InDelta(t, 500.0, b.VelY, 1e-9)
}

func TestRestingBodyStaysPut(t *testing.T) {
	w := ecs.NewWorld()
	addPlatform(t, w, component.Platform{Rect: geom.Rect{X: 0, Y: 500, Width: 400, Height: 50}})
	p := addPlayer(t, w, geom.Rect{X: 100, Y: 400, Width: 50, Height: 100})

	sched := physicsScheduler()
	for i := 0; i < 30; i++ {
		sched.Update(w)
		b := body(t, w, p)
		assert.Equal(t, 400.0, b.Rect.Y, "tick %d", i)
		assert.Equal(t, 0.0, b.VelY)
		assert.True(t, b.Grounded)
	}
}

func TestLandSnapsOnTop(t *testing.T) {
	w := ecs.NewWorld()
	pe := addPlatform(t, w, component.Platform{Rect: geom.Rect{X: 0, Y: 500, Width: 400, Height: 50}})
	p := addPlayer(t, w, geom.Rect{X: 100, Y: 380, Width: 50, Height: 100})
	body(t, w, p).VelY = 30

	physicsScheduler().Update(w)
	b := body(t, w, p)
	assert.Equal(t, 400.0, b.Rect.Y)
	assert.Equal(t, 0.0, b.VelY)
	assert.True(t, b.Grounded)
	assert.False(t, b.Riding.Valid(), "static platforms are not ridden")

	plat, _ := ecs.Get(w, pe, component.PlatformComponent)
	Land(b, pe, plat)
	assert.Equal(t, 400.0, b.Rect.Y, "landing twice changes nothing")
}

func TestRisingBodyPassesThrough(t *testing.T) {
	w := ecs.NewWorld()
	addPlatform(t, w, component.Platform{Rect: geom.Rect{X: 0, Y: 500, Width: 400, Height: 50}})
	p := addPlayer(t, w, geom.Rect{X: 100, Y: 540, Width: 50, Height: 100})
	body(t, w, p).VelY = -15

	physicsScheduler().Update(w)
	b := body(t, w, p)
	assert.False(t, b.Grounded)
	assert.Equal(t, 540.0-14.5, b.Rect.Y)
	assert.Equal(t, -14.5, b.VelY)
}

func TestFirstPlatformByIDWins(t *testing.T) {
	w := ecs.NewWorld()
	addPlatform(t, w, component.Platform{Rect: geom.Rect{X: 0, Y: 510, Width: 400, Height: 50}})
	addPlatform(t, w, component.Platform{Rect: geom.Rect{X: 0, Y: 505, Width: 400, Height: 50}})
	p := addPlayer(t, w, geom.Rect{X: 100, Y: 400, Width: 50, Height: 100})
	body(t, w, p).VelY = 20

	physicsScheduler().Update(w)
	assert.Equal(t, 410.0, body(t, w, p).Rect.Y)
}

func TestJumpFromGround(t *testing.T) {
	w := ecs.NewWorld()
	addPlatform(t, w, component.Platform{Rect: geom.Rect{X: 0, Y: 500, Width: 400, Height: 50}})
	p := addPlayer(t, w, geom.Rect{X: 100, Y: 400, Width: 50, Height: 100})
	in := NewInputSystem()
	sched := ecs.NewScheduler(in)
	for _, s := range physicsScheduler().Systems() {
		sched.Add(s)
	}

	sched.Update(w)
	require.True(t, body(t, w, p).Grounded)

	in.Set(input.Snapshot{Jump: true})
	in.Update(w)
	NewPlayerControllerSystem().Update(w)
	b := body(t, w, p)
	assert.Equal(t, -20.0, b.VelY)
	assert.False(t, b.Grounded)

	// The rest of the tick: gravity applies once and nothing lands the body.
	for _, s := range sched.Systems()[2:] {
		s.Update(w)
	}
	assert.Equal(t, -19.5, b.VelY)
	assert.False(t, b.Grounded)

	// The press was consumed; a grounded-only jump cannot repeat midair.
	sched.Update(w)
	assert.Equal(t, -19.0, body(t, w, p).VelY)
}

func TestJumpRequiresGround(t *testing.T) {
	b := &component.Body{VelY: 3}
	assert.False(t, Jump(b, &component.Player{JumpSpeed: 20}))
	assert.Equal(t, 3.0, b.VelY)

	b.Grounded = true
	b.VelY = -1
	assert.False(t, Jump(b, &component.Player{JumpSpeed: 20}), "already rising")
}

func TestStepTurnsAtBoundary(t *testing.T) {
	p := &component.Platform{
		Kind: component.PlatformMoving,
		Rect: geom.Rect{X: 500, Y: 1600, Width: 300, Height: 50},
		Left: 400, Right: 800, Speed: 2, Direction: 1,
	}
	for i := 1; i < 150; i++ {
		Step(p)
		require.Equal(t, 1.0, p.Direction, "tick %d", i)
	}
	Step(p)
	assert.Equal(t, 800.0, p.Rect.X)
	assert.Equal(t, -1.0, p.Direction)
	assert.Equal(t, 2.0, p.Delta)

	Step(p)
	assert.Equal(t, 798.0, p.Rect.X)
	assert.Equal(t, -2.0, p.Delta)
}

func TestStepIsPeriodic(t *testing.T) {
	p := &component.Platform{
		Kind: component.PlatformMoving,
		Rect: geom.Rect{X: 500, Width: 300, Height: 50},
		Left: 400, Right: 800, Speed: 2, Direction: 1,
	}
	period := int(Period(*p))
	require.Equal(t, 400, period)
	for i := 0; i < period; i++ {
		Step(p)
		require.GreaterOrEqual(t, p.Rect.X, p.Left)
		require.LessOrEqual(t, p.Rect.X, p.Right)
	}
	assert.Equal(t, 500.0, p.Rect.X)
	assert.Equal(t, 1.0, p.Direction)
}

func TestStepClampsOvershoot(t *testing.T) {
	p := &component.Platform{Kind: component.PlatformMoving, Rect: geom.Rect{X: 798, Width: 10, Height: 10}, Left: 400, Right: 800, Speed: 3, Direction: 1}
	Step(p)
	assert.Equal(t, 800.0, p.Rect.X)
	assert.Equal(t, 2.0, p.Delta)
}

func TestRiderIsCarried(t *testing.T) {
	w := ecs.NewWorld()
	pe := addPlatform(t, w, component.Platform{
		Kind: component.PlatformMoving,
		Rect: geom.Rect{X: 500, Y: 500, Width: 300, Height: 50},
		Left: 400, Right: 800, Speed: 2, Direction: 1,
	})
	p := addPlayer(t, w, geom.Rect{X: 600, Y: 400, Width: 50, Height: 100})

	sched := physicsScheduler()
	for i := 0; i < 10; i++ {
		sched.Update(w)
		b := body(t, w, p)
		require.True(t, b.Grounded, "tick %d", i)
		assert.Equal(t, pe, b.Riding)
	}
	assert.Equal(t, 620.0, body(t, w, p).Rect.X)
}

func TestRiderWalksWhileCarried(t *testing.T) {
	w := ecs.NewWorld()
	pe := addPlatform(t, w, component.Platform{
		Kind: component.PlatformMoving,
		Rect: geom.Rect{X: 500, Y: 500, Width: 300, Height: 50},
		Left: 400, Right: 800, Speed: 2, Direction: 1,
	})
	p := addPlayer(t, w, geom.Rect{X: 600, Y: 400, Width: 50, Height: 100})
	in, ok := ecs.Get(w, p, component.InputComponent)
	require.True(t, ok)
	in.MoveX = 1

	sched := physicsScheduler()
	for i := 0; i < 10; i++ {
		x0 := body(t, w, p).Rect.X
		sched.Update(w)
		b := body(t, w, p)
		require.Equal(t, pe, b.Riding, "tick %d", i)
		plat, _ := ecs.Get(w, pe, component.PlatformComponent)
		assert.Equal(t, b.Speed+plat.Delta*DefaultCarryScale, b.Rect.X-x0, "tick %d", i)
	}
	assert.Equal(t, 670.0, body(t, w, p).Rect.X)
}

func TestCarryScaleFromTuning(t *testing.T) {
	w := ecs.NewWorld()
	te := w.CreateEntity()
	require.NoError(t, ecs.Add(w, te, component.TuningComponent, component.Tuning{CarryScale: 0.5}))
	pe := addPlatform(t, w, component.Platform{Kind: component.PlatformMoving, Rect: geom.Rect{X: 500, Y: 500, Width: 300, Height: 50}, Left: 400, Right: 800, Speed: 2, Direction: 1, Delta: 4})
	p := addPlayer(t, w, geom.Rect{X: 600, Y: 400, Width: 50, Height: 100})
	body(t, w, p).Riding = pe

	NewCarrySystem().Update(w)
	assert.Equal(t, 602.0, body(t, w, p).Rect.X)
}

func TestCarryDropsVanishedPlatform(t *testing.T) {
	w := ecs.NewWorld()
	pe := addPlatform(t, w, component.Platform{Kind: component.PlatformMoving, Rect: geom.Rect{X: 500, Y: 500, Width: 300, Height: 50}, Left: 400, Right: 800, Speed: 2, Direction: 1, Delta: 2})
	p := addPlayer(t, w, geom.Rect{X: 600, Y: 400, Width: 50, Height: 100})
	body(t, w, p).Riding = pe
	w.DestroyEntity(pe)

	NewCarrySystem().Update(w)
	assert.Equal(t, 600.0, body(t, w, p).Rect.X)
	assert.False(t, body(t, w, p).Riding.Valid())
}

func TestFoeTurnsAtLeadingEdge(t *testing.T) {
	foe := &component.Foe{MinX: 200, MaxX: 400, Direction: 1}
	b := &component.Body{Rect: geom.Rect{X: 320, Width: 75, Height: 75}}
	Patrol(foe, b)
	assert.Equal(t, 1.0, foe.Direction, "right edge 395 is still inside")

	b.Rect.X = 326
	Patrol(foe, b)
	assert.Equal(t, -1.0, foe.Direction)
	assert.Equal(t, -1.0, b.MoveX)

	b.Rect.X = 199
	Patrol(foe, b)
	assert.Equal(t, 1.0, foe.Direction)
}

func TestFoeStaysInPatrolRange(t *testing.T) {
	w := ecs.NewWorld()
	addPlatform(t, w, component.Platform{Rect: geom.Rect{X: 0, Y: 500, Width: 1000, Height: 50}})
	f := addFoe(t, w, geom.Rect{X: 300, Y: 425, Width: 75, Height: 75}, 200, 725)

	sched := physicsScheduler()
	for i := 0; i < 1000; i++ {
		sched.Update(w)
		b := body(t, w, f)
		require.GreaterOrEqual(t, b.Rect.Left(), 200.0-2)
		require.LessOrEqual(t, b.Rect.Right(), 725.0+2)
		require.True(t, b.Grounded)
	}
}

func TestPlatformIndexCandidates(t *testing.T) {
	w := ecs.NewWorld()
	a := addPlatform(t, w, component.Platform{Rect: geom.Rect{X: 0, Y: 500, Width: 200, Height: 50}})
	addPlatform(t, w, component.Platform{Rect: geom.Rect{X: 1000, Y: 500, Width: 200, Height: 50}})
	c := addPlatform(t, w, component.Platform{Rect: geom.Rect{X: 150, Y: 520, Width: 200, Height: 50}})
	addPlatform(t, w, component.Platform{Kind: component.PlatformMoving, Rect: geom.Rect{X: 100, Y: 500, Width: 200, Height: 50}, Left: 0, Right: 300, Speed: 1, Direction: 1})

	idx := NewPlatformIndex()
	idx.Build(w)
	assert.True(t, idx.Built())
	assert.Equal(t, 3, idx.Len(), "moving platforms are not indexed")

	got := idx.Candidates(geom.Rect{X: 120, Y: 450, Width: 50, Height: 100})
	assert.Equal(t, []ecs.Entity{a, c}, got)
	assert.Empty(t, idx.Candidates(geom.Rect{X: 500, Y: 0, Width: 10, Height: 10}))
}
