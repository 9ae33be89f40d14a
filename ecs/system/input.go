package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
)

// InputSystem copies the tick's input snapshot onto every Input component.
type InputSystem struct {
	snapshot input.Snapshot
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Set stores the snapshot polled for the coming tick.
func (i *InputSystem) Set(snap input.Snapshot) {
	i.snapshot = snap
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	snap := i.snapshot
	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, in *component.Input) {
		in.MoveX = snap.MoveX()
		in.JumpPressed = snap.Jump
	})
	// presses are consumed by a single tick
	i.snapshot.Jump = false
}
