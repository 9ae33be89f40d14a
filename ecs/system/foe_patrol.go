package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// FoePatrolSystem flips a foe once its leading edge has passed the end of its
// patrol range and feeds the direction back as the foe's intent.
type FoePatrolSystem struct{}

func NewFoePatrolSystem() *FoePatrolSystem {
	return &FoePatrolSystem{}
}

func (s *FoePatrolSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range w.Query(component.FoeComponent, component.BodyComponent) {
		foe, _ := ecs.Get(w, e, component.FoeComponent)
		body, _ := ecs.Get(w, e, component.BodyComponent)
		Patrol(foe, body)
	}
}

func Patrol(foe *component.Foe, body *component.Body) {
	switch {
	case foe.Direction > 0 && body.Rect.Right() > foe.MaxX:
		foe.Direction = -1
	case foe.Direction < 0 && body.Rect.Left() < foe.MinX:
		foe.Direction = 1
	}
	body.MoveX = foe.Direction
}
