// Package session runs one play-through of a level: it owns the world, the
// tick order and the game-over state.
package session

import (
	"fmt"
	"log"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/geom"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/render"
)

// GameOverMessage is shown while waiting for the session-over decision.
const GameOverMessage = "Press R to Restart or Q to Quit"

// Status summarises a session for the game-over prompt.
type Status struct {
	Level  string
	Ticks  int
	Stomps int
	// Killer is the foe that ended the session, zero while the player lives.
	Killer ecs.Entity
}

type Session struct {
	world   *ecs.World
	handles entity.Handles

	input     *system.InputSystem
	index     *system.PlatformIndex
	scheduler *ecs.Scheduler
	renderer  *system.RenderSystem

	status Status
	over   bool
	events []ecs.Event

	Debug bool
}

// New builds a fresh world for lvl. Nothing is shared between sessions built
// from the same level.
func New(lvl *levels.Level, ctx render.Context) (*Session, error) {
	if lvl == nil {
		return nil, fmt.Errorf("session: nil level")
	}
	view := ctx.Viewport()
	if !view.Valid() {
		return nil, fmt.Errorf("session: viewport %s: %w", view, geom.ErrDegenerate)
	}

	world := ecs.NewWorld()
	handles, err := entity.LoadLevelToWorld(world, lvl, view)
	if err != nil {
		return nil, fmt.Errorf("session: build level %q: %w", lvl.Name, err)
	}

	in := system.NewInputSystem()
	index := system.NewPlatformIndex()
	index.Build(world)
	s := &Session{
		world:   world,
		handles: handles,
		input:   in,
		index:   index,
		scheduler: ecs.NewScheduler(
			in,
			system.NewPlayerControllerSystem(),
			system.NewMovementSystem(),
			system.NewFoePatrolSystem(),
			system.NewPlatformCollisionSystem(index),
			system.NewCombatSystem(),
			system.NewPlatformPatrolSystem(),
			system.NewCarrySystem(),
			system.NewCameraSystem(),
		),
		renderer: system.NewRenderSystem(),
		status:   Status{Level: lvl.Name},
	}
	return s, nil
}

// Tick advances the simulation one step. It does nothing once the session is
// over.
func (s *Session) Tick(snap input.Snapshot) {
	if s == nil || s.over {
		return
	}
	s.input.Set(snap)
	s.scheduler.Update(s.world)
	s.status.Ticks++

	s.events = s.world.Events().Drain()
	for _, evt := range s.events {
		switch evt.Type {
		case ecs.EventStomp:
			s.status.Stomps++
			if s.Debug {
				log.Printf("session: tick %d: stomped foe %v", s.status.Ticks, evt.Other)
			}
		case ecs.EventPlayerDied:
			s.over = true
			s.status.Killer = evt.Other
			log.Printf("session: %q over after %d ticks (%d stomps)", s.status.Level, s.status.Ticks, s.status.Stomps)
		}
	}
}

// Render draws the current state through the camera.
func (s *Session) Render(surface render.Surface) error {
	if s == nil {
		return nil
	}
	return s.renderer.Draw(s.world, surface)
}

func (s *Session) Over() bool {
	return s != nil && s.over
}

// Events returns what happened during the last tick.
func (s *Session) Events() []ecs.Event {
	return s.events
}

func (s *Session) Status() Status {
	return s.status
}

// Player returns a copy of the player's body while it is alive.
func (s *Session) Player() (component.Body, bool) {
	body, ok := ecs.Get(s.world, s.handles.Player, component.BodyComponent)
	if !ok {
		return component.Body{}, false
	}
	return *body, true
}

// Viewport returns the world-space area the camera currently shows.
func (s *Session) Viewport() geom.Rect {
	cam, ok := ecs.Get(s.world, s.handles.Camera, component.CameraComponent)
	if !ok {
		return geom.Rect{}
	}
	return cam.Viewport
}

// Index is the broad phase holding the level's static platforms.
func (s *Session) Index() *system.PlatformIndex {
	return s.index
}

// World exposes the simulation state for inspection.
func (s *Session) World() *ecs.World {
	return s.world
}
