package main

import (
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/render"
	"github.com/milk9111/platformer/render/screen"
	"github.com/milk9111/platformer/session"
)

type Game struct {
	levelName string
	debug     bool

	ctx     render.Context
	input   input.Source
	surface *screen.Surface
	watcher *levels.Watcher

	session  *session.Session
	overUI   *ebitenui.UI
	decision *session.Decision
}

func NewGame(levelName string, ctx render.Context, src input.Source, debug bool) (*Game, error) {
	g := &Game{
		levelName: levelName,
		debug:     debug,
		ctx:       ctx,
		input:     src,
		surface:   screen.New(ctx),
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// Watch reloads the level whenever its file changes on disk.
func (g *Game) Watch() error {
	path, ok := levels.Path(g.levelName)
	if !ok {
		return fmt.Errorf("watch: %s is embedded, not on disk", g.levelName)
	}
	w, err := levels.NewWatcher(path)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	g.watcher = w
	return nil
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

// restart builds a fresh session; nothing is carried over from the last one.
func (g *Game) restart() error {
	lvl, err := levels.Load(g.levelName)
	if err != nil {
		return err
	}
	s, err := session.New(lvl, g.ctx)
	if err != nil {
		return err
	}
	s.Debug = g.debug
	g.session = s
	g.overUI = nil
	g.decision = nil
	return nil
}

func (g *Game) decide(d session.Decision) {
	g.decision = &d
}

func (g *Game) Update() error {
	g.pollWatcher()

	snap := g.input.Poll()
	if g.session.Over() {
		switch {
		case snap.Restart:
			g.decide(session.DecisionRestart)
		case snap.Quit:
			g.decide(session.DecisionQuit)
		}
		if g.overUI == nil {
			g.overUI = NewGameOverUI(g, g.session.Status())
		}
		g.overUI.Update()
		if g.decision == nil {
			return nil
		}
		if *g.decision == session.DecisionQuit {
			return ebiten.Termination
		}
		return g.restart()
	}

	if snap.Quit {
		return ebiten.Termination
	}
	g.session.Tick(snap)
	return nil
}

// pollWatcher drains pending file changes without blocking and restarts the
// level once for the batch.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
drain:
	for g.watcher != nil {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				break drain
			}
			log.Printf("level changed: %s", name)
			changed = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				break drain
			}
			log.Printf("watch: %v", err)
		default:
			break drain
		}
	}
	if !changed {
		return
	}
	if err := g.restart(); err != nil {
		// keep playing the last good level
		log.Printf("reload %s: %v", g.levelName, err)
	}
}

func (g *Game) Draw(img *ebiten.Image) {
	g.surface.SetTarget(img)
	if err := g.session.Render(g.surface); err != nil {
		log.Printf("render: %v", err)
	}

	if g.debug {
		text := fmt.Sprintf("TPS: %.1f  FPS: %.1f  tick: %d", ebiten.ActualTPS(), ebiten.ActualFPS(), g.session.Status().Ticks)
		if body, ok := g.session.Player(); ok {
			text += fmt.Sprintf("\nplayer: %s vy=%.1f grounded=%v", body.Rect, body.VelY, body.Grounded)
		}
		screen.DrawSpaceDebug(img, g.session.Index().Space(), g.session.Viewport())
		ebitenutil.DebugPrintAt(img, text, 10, 10)
	}

	if g.overUI != nil {
		g.overUI.Draw(img)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.ctx.Width), float64(g.ctx.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
