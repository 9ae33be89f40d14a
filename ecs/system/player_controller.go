package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PlayerControllerSystem turns input into horizontal intent and jumps.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range w.Query(component.PlayerComponent, component.BodyComponent, component.InputComponent) {
		player, _ := ecs.Get(w, e, component.PlayerComponent)
		body, _ := ecs.Get(w, e, component.BodyComponent)
		in, _ := ecs.Get(w, e, component.InputComponent)
		if !player.Alive {
			continue
		}

		body.MoveX = in.MoveX
		if in.JumpPressed {
			Jump(body, player)
		}
	}
}

// Jump launches a grounded body that is not already rising. It reports
// whether the jump happened.
func Jump(body *component.Body, player *component.Player) bool {
	if !body.Grounded || body.VelY < 0 {
		return false
	}
	body.VelY = -player.JumpSpeed
	body.Grounded = false
	return true
}
