package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/geom"
	"github.com/milk9111/platformer/levels"
)

// Handles are the singleton entities created for a level.
type Handles struct {
	Player ecs.Entity
	Camera ecs.Entity
}

// LoadLevelToWorld populates an empty world from lvl. The player is created
// first so it is always the lowest entity id. Any invalid descriptor aborts
// the build and the world should be discarded.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, viewport geom.Rect) (Handles, error) {
	if lvl == nil {
		return Handles{}, fmt.Errorf("level: nil level")
	}
	if err := lvl.Validate(); err != nil {
		return Handles{}, err
	}

	var h Handles
	var err error
	gravity := lvl.Physics.Gravity
	if h.Player, err = NewPlayer(w, lvl.Player, lvl.Spawn, gravity); err != nil {
		return Handles{}, err
	}

	boundsEntity := w.CreateEntity()
	if err := ecs.Add(w, boundsEntity, component.LevelBoundsComponent, component.LevelBounds{
		Width:  lvl.Width,
		Height: lvl.Height,
	}); err != nil {
		return Handles{}, fmt.Errorf("level: add bounds: %w", err)
	}
	if err := ecs.Add(w, boundsEntity, component.TuningComponent, component.Tuning{
		StompTolerance: lvl.Physics.StompTolerance,
		CarryScale:     lvl.Physics.CarryScale,
	}); err != nil {
		return Handles{}, fmt.Errorf("level: add tuning: %w", err)
	}

	for i, p := range lvl.Platforms {
		if _, err := NewPlatform(w, p); err != nil {
			return Handles{}, fmt.Errorf("level %q: platforms[%d]: %w", lvl.Name, i, err)
		}
	}
	for i, p := range lvl.MovingPlatforms {
		if _, err := NewMovingPlatform(w, p); err != nil {
			return Handles{}, fmt.Errorf("level %q: moving_platforms[%d]: %w", lvl.Name, i, err)
		}
	}
	for i, f := range lvl.Foes {
		if _, err := NewFoe(w, f, gravity); err != nil {
			return Handles{}, fmt.Errorf("level %q: foes[%d]: %w", lvl.Name, i, err)
		}
	}

	if h.Camera, err = NewCamera(w, h.Player, viewport); err != nil {
		return Handles{}, err
	}
	return h, nil
}
