package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
)

func NewFoe(w *ecs.World, spec levels.FoeSpec, gravity float64) (ecs.Entity, error) {
	r, err := rect("foe", spec.X, spec.Y, spec.Width, spec.Height)
	if err != nil {
		return 0, err
	}
	if err := checkPatrol("foe", spec.MinX, spec.MaxX, spec.X, spec.Width, spec.Speed); err != nil {
		return 0, err
	}

	dir := direction(spec.Direction)
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.BodyComponent, component.Body{
		Kind:    component.BodyFoe,
		Rect:    r,
		Gravity: gravity,
		Speed:   spec.Speed,
		MoveX:   dir,
	}); err != nil {
		return 0, fmt.Errorf("foe: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.FoeComponent, component.Foe{
		MinX:      spec.MinX,
		MaxX:      spec.MaxX,
		Direction: dir,
	}); err != nil {
		return 0, fmt.Errorf("foe: add foe: %w", err)
	}
	if err := addLayer(w, e, component.LayerFoes); err != nil {
		return 0, fmt.Errorf("foe: add render layer: %w", err)
	}
	return e, nil
}
