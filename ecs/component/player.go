package component

import "github.com/milk9111/platformer/ecs"

type Player struct {
	JumpSpeed float64
	Alive     bool
}

var PlayerComponent = ecs.NewComponent[Player]()
