package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/render"
)

func NewPlatform(w *ecs.World, spec levels.PlatformSpec) (ecs.Entity, error) {
	r, err := rect("platform", spec.X, spec.Y, spec.Width, spec.Height)
	if err != nil {
		return 0, err
	}
	style, err := render.ParseStyle(spec.Style)
	if err != nil {
		return 0, fmt.Errorf("platform: %w", err)
	}
	return addPlatform(w, component.Platform{
		Kind:  component.PlatformStatic,
		Rect:  r,
		Style: style,
	})
}

// NewMovingPlatform creates a platform whose X patrols [Left, Right].
func NewMovingPlatform(w *ecs.World, spec levels.MovingPlatformSpec) (ecs.Entity, error) {
	r, err := rect("moving platform", spec.X, spec.Y, spec.Width, spec.Height)
	if err != nil {
		return 0, err
	}
	// Only the left edge is bounded, so the span check uses zero width.
	if err := checkPatrol("moving platform", spec.Left, spec.Right, spec.X, 0, spec.Speed); err != nil {
		return 0, err
	}
	style := render.StyleMoving
	if spec.Style != "" {
		if style, err = render.ParseStyle(spec.Style); err != nil {
			return 0, fmt.Errorf("moving platform: %w", err)
		}
	}
	return addPlatform(w, component.Platform{
		Kind:      component.PlatformMoving,
		Rect:      r,
		Style:     style,
		Left:      spec.Left,
		Right:     spec.Right,
		Speed:     spec.Speed,
		Direction: direction(spec.Direction),
	})
}

func addPlatform(w *ecs.World, p component.Platform) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.PlatformComponent, p); err != nil {
		return 0, fmt.Errorf("%s platform: add platform: %w", p.Kind, err)
	}
	if err := addLayer(w, e, component.LayerPlatforms); err != nil {
		return 0, fmt.Errorf("%s platform: add render layer: %w", p.Kind, err)
	}
	return e, nil
}
