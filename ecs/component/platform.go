package component

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/geom"
	"github.com/milk9111/platformer/render"
)

// PlatformKind is the closed set of platform variants.
type PlatformKind int

const (
	PlatformStatic PlatformKind = iota + 1
	PlatformMoving
)

func (k PlatformKind) String() string {
	switch k {
	case PlatformStatic:
		return "static"
	case PlatformMoving:
		return "moving"
	}
	return "unknown"
}

// Platform is a surface bodies can land on. Only PlatformMoving uses the
// patrol fields; Left and Right bound the platform's X.
type Platform struct {
	Kind  PlatformKind
	Rect  geom.Rect
	Style render.Style

	Left      float64
	Right     float64
	Speed     float64
	Direction float64
	// Delta is the signed horizontal distance moved on the current tick.
	Delta float64
}

var PlatformComponent = ecs.NewComponent[Platform]()
