package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/geom"
	"github.com/milk9111/platformer/render"
	"github.com/stretchr/testify/require"
)

const gravity = 0.5

func addPlayer(t *testing.T, w *ecs.World, r geom.Rect) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	require.NoError(t, ecs.Add(w, e, component.BodyComponent, component.Body{Kind: component.BodyPlayer, Rect: r, Gravity: gravity, Speed: 5}))
	require.NoError(t, ecs.Add(w, e, component.PlayerComponent, component.Player{JumpSpeed: 20, Alive: true}))
	require.NoError(t, ecs.Add(w, e, component.InputComponent, component.Input{}))
	require.NoError(t, ecs.Add(w, e, component.RenderLayerComponent, component.RenderLayer{Index: component.LayerPlayer}))
	return e
}

func addFoe(t *testing.T, w *ecs.World, r geom.Rect, minX, maxX float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	require.NoError(t, ecs.Add(w, e, component.BodyComponent, component.Body{Kind: component.BodyFoe, Rect: r, Gravity: gravity, Speed: 2, MoveX: 1}))
	require.NoError(t, ecs.Add(w, e, component.FoeComponent, component.Foe{MinX: minX, MaxX: maxX, Direction: 1}))
	require.NoError(t, ecs.Add(w, e, component.RenderLayerComponent, component.RenderLayer{Index: component.LayerFoes}))
	return e
}

func addPlatform(t *testing.T, w *ecs.World, p component.Platform) ecs.Entity {
	t.Helper()
	if p.Kind == 0 {
		p.Kind = component.PlatformStatic
	}
	if p.Style == render.StyleNone {
		p.Style = render.StyleFloating
	}
	e := w.CreateEntity()
	require.NoError(t, ecs.Add(w, e, component.PlatformComponent, p))
	require.NoError(t, ecs.Add(w, e, component.RenderLayerComponent, component.RenderLayer{Index: component.LayerPlatforms}))
	return e
}

func body(t *testing.T, w *ecs.World, e ecs.Entity) *component.Body {
	t.Helper()
	b, ok := ecs.Get(w, e, component.BodyComponent)
	require.True(t, ok)
	return b
}

// physicsScheduler runs the simulation systems in tick order, minus input.
func physicsScheduler() *ecs.Scheduler {
	return ecs.NewScheduler(
		NewPlayerControllerSystem(),
		NewMovementSystem(),
		NewFoePatrolSystem(),
		NewPlatformCollisionSystem(nil),
		NewCombatSystem(),
		NewPlatformPatrolSystem(),
		NewCarrySystem(),
		NewCameraSystem(),
	)
}
