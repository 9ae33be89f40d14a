package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/platformer/render"
	"github.com/milk9111/platformer/session"
)

// Prompt shows the game-over message and blocks for R or Q.
type Prompt struct {
	screen tcell.Screen
	events <-chan tcell.Event
	ctx    render.Context
}

func NewPrompt(screen tcell.Screen, events <-chan tcell.Event, ctx render.Context) *Prompt {
	return &Prompt{screen: screen, events: events, ctx: ctx}
}

func (p *Prompt) Prompt(st session.Status) session.Decision {
	p.draw(st)
	for ev := range p.events {
		switch ev := ev.(type) {
		case *tcell.EventResize:
			p.screen.Sync()
			p.draw(st)
		case *tcell.EventKey:
			if d, ok := decide(ev); ok {
				return d
			}
		}
	}
	return session.DecisionQuit
}

func decide(ev *tcell.EventKey) (session.Decision, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return session.DecisionQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'r', 'R':
			return session.DecisionRestart, true
		case 'q', 'Q':
			return session.DecisionQuit, true
		}
	}
	return session.DecisionQuit, false
}

func (p *Prompt) draw(st session.Status) {
	cols, rows := p.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.FromImageColor(p.ctx.Palette.Text)).
		Background(tcell.FromImageColor(p.ctx.Palette.Background))
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("%d ticks, %d stomps", st.Ticks, st.Stomps),
		session.GameOverMessage,
	}
	top := rows/2 - len(lines)/2
	for i, line := range lines {
		drawText(p.screen, (cols-len(line))/2, top+i, line, style)
	}
	p.screen.Show()
}
