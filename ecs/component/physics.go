package component

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/geom"
)

// BodyKind is the closed set of kinematic body variants.
type BodyKind int

const (
	BodyPlayer BodyKind = iota + 1
	BodyFoe
)

func (k BodyKind) String() string {
	switch k {
	case BodyPlayer:
		return "player"
	case BodyFoe:
		return "foe"
	}
	return "unknown"
}

// Body is the kinematic state shared by the player and foes. VelY is positive
// while falling.
type Body struct {
	Kind     BodyKind
	Rect     geom.Rect
	VelY     float64
	Grounded bool
	Gravity  float64
	Speed    float64
	// MoveX is the horizontal intent for this tick in [-1, 1].
	MoveX float64
	// Riding is the moving platform the body landed on this tick. It is reset
	// before every collision pass and never outlives the tick after it was set.
	Riding ecs.Entity
}

var BodyComponent = ecs.NewComponent[Body]()
