package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/geom"
)

// NewCamera creates a camera following target, with the viewport already
// centered on it when the target has a body.
func NewCamera(w *ecs.World, target ecs.Entity, viewport geom.Rect) (ecs.Entity, error) {
	if !viewport.Valid() {
		return 0, fmt.Errorf("camera: viewport %s: %w", viewport, geom.ErrDegenerate)
	}
	if body, ok := ecs.Get(w, target, component.BodyComponent); ok {
		viewport = viewport.CenteredOn(body.Rect.CenterX(), body.Rect.CenterY())
		if be, ok := w.First(component.LevelBoundsComponent); ok {
			if bounds, ok := ecs.Get(w, be, component.LevelBoundsComponent); ok {
				viewport = viewport.ClampWithin(bounds.Rect())
			}
		}
	}

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.CameraComponent, component.Camera{
		Target:   target,
		Viewport: viewport,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera: %w", err)
	}
	return e, nil
}
