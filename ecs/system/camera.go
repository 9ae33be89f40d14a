package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/geom"
)

// CameraSystem centers the camera on its target and clamps it to the level.
// The result depends only on the target's current position.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	camEntity, ok := w.First(component.CameraComponent)
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent)

	target, ok := ecs.Get(w, cam.Target, component.BodyComponent)
	if !ok {
		// target is gone (player died); keep the last view
		return
	}

	var bounds *geom.Rect
	if e, ok := w.First(component.LevelBoundsComponent); ok {
		lb, _ := ecs.Get(w, e, component.LevelBoundsComponent)
		r := lb.Rect()
		bounds = &r
	}
	cam.Viewport = Follow(cam.Viewport, target.Rect, bounds)
}

// Follow returns view centered on target, clamped inside bounds when given.
func Follow(view, target geom.Rect, bounds *geom.Rect) geom.Rect {
	view = view.CenteredOn(target.CenterX(), target.CenterY())
	if bounds != nil {
		view = view.ClampWithin(*bounds)
	}
	return view
}
