package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PlatformPatrolSystem moves every moving platform one step along its patrol
// and records the step in Delta.
type PlatformPatrolSystem struct{}

func NewPlatformPatrolSystem() *PlatformPatrolSystem {
	return &PlatformPatrolSystem{}
}

func (s *PlatformPatrolSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.PlatformComponent, func(_ ecs.Entity, p *component.Platform) {
		switch p.Kind {
		case component.PlatformMoving:
			Step(p)
		case component.PlatformStatic:
		}
	})
}

// Step advances a moving platform. Reaching a boundary clamps X onto it and
// reverses direction, so X always stays within [Left, Right].
func Step(p *component.Platform) {
	old := p.Rect.X
	x := old + p.Speed*p.Direction
	switch {
	case p.Direction > 0 && x >= p.Right:
		x = p.Right
		p.Direction = -1
	case p.Direction < 0 && x <= p.Left:
		x = p.Left
		p.Direction = 1
	}
	p.Rect.X = x
	p.Delta = x - old
}

// Period returns the number of ticks for a full back-and-forth cycle.
func Period(p component.Platform) float64 {
	if p.Speed <= 0 {
		return 0
	}
	return 2 * (p.Right - p.Left) / p.Speed
}
