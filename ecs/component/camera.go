package component

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/geom"
)

// Camera is the world-space window that is currently visible.
type Camera struct {
	Target   ecs.Entity
	Viewport geom.Rect
}

var CameraComponent = ecs.NewComponent[Camera]()
