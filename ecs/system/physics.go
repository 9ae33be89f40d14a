package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// MovementSystem integrates every kinematic body: horizontal intent first,
// then gravity into VelY, then VelY into position. Fall speed is not capped.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.BodyComponent, func(_ ecs.Entity, body *component.Body) {
		Integrate(body)
	})
}

// Integrate advances body by one tick. Grounded and Riding are cleared so the
// collision pass can recompute them from scratch.
func Integrate(body *component.Body) {
	body.Grounded = false
	body.Riding = 0

	body.Rect.X += body.Speed * body.MoveX
	body.VelY += body.Gravity
	body.Rect.Y += body.VelY
}
