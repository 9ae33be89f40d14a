package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// DefaultCarryScale moves riders exactly as far as their platform.
const DefaultCarryScale = 1.0

// CarrySystem moves bodies along with the moving platform they landed on this
// tick. It runs after PlatformPatrolSystem so Delta is the current step.
type CarrySystem struct{}

func NewCarrySystem() *CarrySystem {
	return &CarrySystem{}
}

func (s *CarrySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	scale := tuningOf(w).CarryScale
	ecs.ForEach(w, component.BodyComponent, func(_ ecs.Entity, body *component.Body) {
		if !body.Riding.Valid() {
			return
		}
		p, ok := ecs.Get(w, body.Riding, component.PlatformComponent)
		if !ok || p.Kind != component.PlatformMoving {
			body.Riding = 0
			return
		}
		body.Rect.X += p.Delta * scale
	})
}
