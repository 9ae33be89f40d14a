package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
)

// NewPlayer creates the player with its top-left corner at spawn.
func NewPlayer(w *ecs.World, spec levels.PlayerSpec, spawn levels.Point, gravity float64) (ecs.Entity, error) {
	r, err := rect("player", spawn.X, spawn.Y, spec.Width, spec.Height)
	if err != nil {
		return 0, err
	}
	if spec.Speed <= 0 || spec.JumpSpeed <= 0 {
		return 0, fmt.Errorf("player: speed %v jump %v: %w", spec.Speed, spec.JumpSpeed, ErrNonPositiveSpeed)
	}

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.BodyComponent, component.Body{
		Kind:    component.BodyPlayer,
		Rect:    r,
		Gravity: gravity,
		Speed:   spec.Speed,
	}); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent, component.Player{
		JumpSpeed: spec.JumpSpeed,
		Alive:     true,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent, component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := addLayer(w, e, component.LayerPlayer); err != nil {
		return 0, fmt.Errorf("player: add render layer: %w", err)
	}
	return e, nil
}
