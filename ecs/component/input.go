package component

import "github.com/milk9111/platformer/ecs"

// Input stores per-tick input state for an entity.
type Input struct {
	MoveX       float64
	JumpPressed bool
}

var InputComponent = ecs.NewComponent[Input]()
