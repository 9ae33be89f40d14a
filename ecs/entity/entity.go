package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/geom"
)

var (
	ErrInvalidPatrol      = errors.New("entity: patrol range is empty")
	ErrStartOutsidePatrol = errors.New("entity: start position outside patrol range")
	ErrNonPositiveSpeed   = errors.New("entity: speed must be positive")
)

// checkPatrol validates a horizontal range [lo, hi] that must contain the
// span [x, x+width].
func checkPatrol(name string, lo, hi, x, width, speed float64) error {
	if hi <= lo {
		return fmt.Errorf("%s: range [%v,%v]: %w", name, lo, hi, ErrInvalidPatrol)
	}
	if speed <= 0 {
		return fmt.Errorf("%s: speed %v: %w", name, speed, ErrNonPositiveSpeed)
	}
	if x < lo || x+width > hi {
		return fmt.Errorf("%s: x=%v width=%v range [%v,%v]: %w", name, x, width, lo, hi, ErrStartOutsidePatrol)
	}
	return nil
}

func direction(d float64) float64 {
	if s := common.Sign(d); s != 0 {
		return s
	}
	return 1
}

func addLayer(w *ecs.World, e ecs.Entity, layer int) error {
	return ecs.Add(w, e, component.RenderLayerComponent, component.RenderLayer{Index: layer})
}

func rect(name string, x, y, width, height float64) (geom.Rect, error) {
	r, err := geom.NewRect(x, y, width, height)
	if err != nil {
		return geom.Rect{}, fmt.Errorf("%s: %w", name, err)
	}
	return r, nil
}
