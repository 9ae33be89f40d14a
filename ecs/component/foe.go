package component

import "github.com/milk9111/platformer/ecs"

// Foe patrols between MinX and MaxX, flipping Direction when its leading edge
// passes either end.
type Foe struct {
	MinX      float64
	MaxX      float64
	Direction float64
}

var FoeComponent = ecs.NewComponent[Foe]()
