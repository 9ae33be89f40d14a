package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/platformer/geom"
	"github.com/milk9111/platformer/render"
	"github.com/milk9111/platformer/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(64, 36)
	return s
}

func cellStyle(s tcell.SimulationScreen, x, y int) tcell.Style {
	cells, w, _ := s.GetContents()
	return cells[y*w+x].Style
}

func TestSurfaceScalesToGrid(t *testing.T) {
	scr := simScreen(t)
	ctx := render.NewContext(1280, 720)
	surf := NewSurface(scr, ctx)

	surf.Clear()
	surf.Draw(render.Command{Rect: geom.Rect{X: 0, Y: 700, Width: 1280, Height: 20}, Style: render.StyleGround})
	surf.Draw(render.Command{Rect: geom.Rect{X: 200, Y: 200, Width: 100, Height: 200}, Style: render.StyleFoe})
	require.NoError(t, surf.Present())

	ground := tcell.StyleDefault.Background(tcell.FromImageColor(ctx.Palette.Color(render.StyleGround)))
	foe := tcell.StyleDefault.Background(tcell.FromImageColor(ctx.Palette.Color(render.StyleFoe)))
	sky := tcell.StyleDefault.Background(tcell.FromImageColor(ctx.Palette.Background))

	assert.Equal(t, ground, cellStyle(scr, 10, 35))
	assert.Equal(t, foe, cellStyle(scr, 10, 10))
	assert.Equal(t, sky, cellStyle(scr, 40, 10))
}

func TestSurfaceRoundsCorners(t *testing.T) {
	scr := simScreen(t)
	ctx := render.NewContext(1280, 720)
	surf := NewSurface(scr, ctx)
	surf.Draw(render.Command{Rect: geom.Rect{X: 200, Y: 200, Width: 200, Height: 100}, Style: render.StyleFloating})
	require.NoError(t, surf.Present())

	sky := tcell.StyleDefault.Background(tcell.FromImageColor(ctx.Palette.Background))
	white := tcell.StyleDefault.Background(tcell.FromImageColor(ctx.Palette.Color(render.StyleFloating)))
	assert.Equal(t, sky, cellStyle(scr, 10, 10), "corner")
	assert.Equal(t, white, cellStyle(scr, 11, 10))
	assert.Equal(t, white, cellStyle(scr, 10, 11))
}

func TestKeysHoldAndDecay(t *testing.T) {
	events := make(chan tcell.Event, 4)
	k := NewKeys(events)
	k.HoldTicks = 3

	events <- tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)
	events <- tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)

	snap := k.Poll()
	assert.True(t, snap.Right)
	assert.True(t, snap.Jump)
	snap = k.Poll()
	assert.True(t, snap.Right)
	assert.False(t, snap.Jump, "presses last one poll")
	k.Poll()
	assert.False(t, k.Poll().Right)

	events <- tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)
	events <- tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
	snap = k.Poll()
	assert.True(t, snap.Left)
	assert.False(t, snap.Right, "opposite key cancels")

	close(events)
	assert.True(t, k.Poll().Quit, "closed event stream quits")
}

func TestKeysQuitAndRestart(t *testing.T) {
	events := make(chan tcell.Event, 4)
	k := NewKeys(events)
	events <- tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)
	assert.True(t, k.Poll().Restart)
	events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	assert.True(t, k.Poll().Quit)
}

func TestPromptWaitsForDecision(t *testing.T) {
	scr := simScreen(t)
	events := make(chan tcell.Event, 4)
	p := NewPrompt(scr, events, render.NewContext(1280, 720))

	events <- tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	events <- tcell.NewEventKey(tcell.KeyRune, 'R', tcell.ModNone)
	assert.Equal(t, session.DecisionRestart, p.Prompt(session.Status{Ticks: 10}))

	events <- tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	assert.Equal(t, session.DecisionQuit, p.Prompt(session.Status{}))

	close(events)
	assert.Equal(t, session.DecisionQuit, p.Prompt(session.Status{}))
}
