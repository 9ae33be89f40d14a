package component

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/geom"
)

// LevelBounds stores the world-space bounds of the current level.
type LevelBounds struct {
	Width  float64
	Height float64
}

func (b LevelBounds) Rect() geom.Rect {
	return geom.Rect{Width: b.Width, Height: b.Height}
}

var LevelBoundsComponent = ecs.NewComponent[LevelBounds]()
