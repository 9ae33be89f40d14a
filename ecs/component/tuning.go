package component

import "github.com/milk9111/platformer/ecs"

// Tuning holds the world-wide knobs that differ between level revisions.
type Tuning struct {
	// StompTolerance scales the player's fall speed when deciding whether an
	// overlap with a foe counts as landing on top of it.
	StompTolerance float64
	// CarryScale multiplies a moving platform's delta for bodies riding it.
	CarryScale float64
}

var TuningComponent = ecs.NewComponent[Tuning]()
