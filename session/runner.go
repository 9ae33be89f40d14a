package session

import (
	"context"
	"fmt"
	"time"

	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/render"
)

// Decision is what the player chose on the game-over prompt.
type Decision int

const (
	DecisionQuit Decision = iota
	DecisionRestart
)

func (d Decision) String() string {
	if d == DecisionRestart {
		return "restart"
	}
	return "quit"
}

// Prompter blocks until the player decides what to do after a session ends.
type Prompter interface {
	Prompt(Status) Decision
}

type PrompterFunc func(Status) Decision

func (f PrompterFunc) Prompt(s Status) Decision { return f(s) }

// Runner drives sessions on the calling goroutine without a window. Each
// restart loads the level again and starts from a fresh world.
type Runner struct {
	Load     func() (*levels.Level, error)
	Context  render.Context
	Input    input.Source
	Surface  render.Surface
	Prompter Prompter
	// TickRate paces the loop; zero runs as fast as possible.
	TickRate time.Duration
	// MaxTicks ends a session after this many ticks as if Quit was pressed.
	MaxTicks int
	Debug    bool

	sessions int
}

// Sessions returns how many sessions Run has started.
func (r *Runner) Sessions() int {
	return r.sessions
}

// Run plays until the player quits or ctx is cancelled. Quitting is not an
// error.
func (r *Runner) Run(ctx context.Context) error {
	load := r.Load
	if load == nil {
		load = func() (*levels.Level, error) { return levels.Load(levels.DefaultName) }
	}
	src := r.Input
	if src == nil {
		src = input.NewScript()
	}

	var tick <-chan time.Time
	if r.TickRate > 0 {
		ticker := time.NewTicker(r.TickRate)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		lvl, err := load()
		if err != nil {
			return fmt.Errorf("session: load level: %w", err)
		}
		s, err := New(lvl, r.Context)
		if err != nil {
			return err
		}
		s.Debug = r.Debug
		r.sessions++

		decision, err := r.play(ctx, s, src, tick)
		if err != nil {
			return err
		}
		if decision != DecisionRestart {
			return nil
		}
	}
}

func (r *Runner) play(ctx context.Context, s *Session, src input.Source, tick <-chan time.Time) (Decision, error) {
	for n := 0; r.MaxTicks <= 0 || n < r.MaxTicks; n++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return DecisionQuit, ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return DecisionQuit, err
		}

		snap := src.Poll()
		if snap.Quit {
			return DecisionQuit, nil
		}
		s.Tick(snap)
		if r.Surface != nil {
			if err := s.Render(r.Surface); err != nil {
				return DecisionQuit, fmt.Errorf("session: render: %w", err)
			}
		}
		if s.Over() {
			if r.Prompter == nil {
				return DecisionQuit, nil
			}
			return r.Prompter.Prompt(s.Status()), nil
		}
	}
	return DecisionQuit, nil
}
