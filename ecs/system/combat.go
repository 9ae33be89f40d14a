package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/geom"
)

// Outcome classifies a player/foe contact.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeStomp
	OutcomeHit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeStomp:
		return "stomp"
	case OutcomeHit:
		return "hit"
	}
	return "none"
}

// DefaultStompTolerance accepts a stomp when the player's bottom is no deeper
// into the foe than one tick of its current fall.
const DefaultStompTolerance = 1.0

// Classify decides a contact from geometry alone: the player stomps when its
// bottom edge is at most velY*tolerance below the foe's top, anything else
// that overlaps is a hit. A rising player (velY < 0) can never stomp.
func Classify(player geom.Rect, velY float64, foe geom.Rect, tolerance float64) Outcome {
	if !player.Intersects(foe) {
		return OutcomeNone
	}
	if player.Bottom() <= foe.Top()+velY*tolerance {
		return OutcomeStomp
	}
	return OutcomeHit
}

// CombatSystem resolves the player against foes. At most one contact is
// resolved per tick, taken in foe entity order.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem { return &CombatSystem{} }

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	tolerance := tuningOf(w).StompTolerance

	for _, pe := range w.Query(component.PlayerComponent, component.BodyComponent) {
		player, _ := ecs.Get(w, pe, component.PlayerComponent)
		body, _ := ecs.Get(w, pe, component.BodyComponent)
		if !player.Alive {
			continue
		}

		for _, fe := range w.Query(component.FoeComponent, component.BodyComponent) {
			foeBody, _ := ecs.Get(w, fe, component.BodyComponent)

			switch Classify(body.Rect, body.VelY, foeBody.Rect, tolerance) {
			case OutcomeNone:
				continue
			case OutcomeStomp:
				w.DestroyEntity(fe)
				body.VelY = -player.JumpSpeed
				body.Grounded = false
				body.Riding = 0
				w.Events().Push(ecs.Event{Type: ecs.EventStomp, Entity: pe, Other: fe})
			case OutcomeHit:
				player.Alive = false
				w.Events().Push(ecs.Event{Type: ecs.EventPlayerDied, Entity: pe, Other: fe})
				w.DestroyEntity(pe)
			}
			break
		}
	}
}

// tuningOf returns the world's tuning, falling back to defaults for unset
// fields.
func tuningOf(w *ecs.World) component.Tuning {
	t := component.Tuning{StompTolerance: DefaultStompTolerance, CarryScale: DefaultCarryScale}
	e, ok := w.First(component.TuningComponent)
	if !ok {
		return t
	}
	stored, _ := ecs.Get(w, e, component.TuningComponent)
	if stored.StompTolerance > 0 {
		t.StompTolerance = stored.StompTolerance
	}
	if stored.CarryScale != 0 {
		t.CarryScale = stored.CarryScale
	}
	return t
}
