package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PlatformCollisionSystem lands descending bodies on the platforms they
// overlap. Rising bodies pass through: platforms are one-way and have no
// underside.
type PlatformCollisionSystem struct {
	index *PlatformIndex
}

func NewPlatformCollisionSystem(index *PlatformIndex) *PlatformCollisionSystem {
	if index == nil {
		index = NewPlatformIndex()
	}
	return &PlatformCollisionSystem{index: index}
}

func (s *PlatformCollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	s.index.Build(w)

	var moving []ecs.Entity
	for _, e := range w.Query(component.PlatformComponent) {
		if p, ok := ecs.Get(w, e, component.PlatformComponent); ok && p.Kind == component.PlatformMoving {
			moving = append(moving, e)
		}
	}

	ecs.ForEach(w, component.BodyComponent, func(_ ecs.Entity, body *component.Body) {
		if body.VelY <= 0 {
			return
		}
		candidates := append(s.index.Candidates(body.Rect), moving...)
		ecs.SortEntities(candidates)
		for _, pe := range candidates {
			p, ok := ecs.Get(w, pe, component.PlatformComponent)
			if !ok || !body.Rect.Intersects(p.Rect) {
				continue
			}
			Land(body, pe, p)
			return
		}
	})
}

// Land rests body on top of p. A moving platform becomes the body's ride for
// this tick.
func Land(body *component.Body, pe ecs.Entity, p *component.Platform) {
	body.Rect.Y = p.Rect.Top() - body.Rect.Height
	body.VelY = 0
	body.Grounded = true

	switch p.Kind {
	case component.PlatformMoving:
		body.Riding = pe
	case component.PlatformStatic:
		body.Riding = 0
	}
}
