// Package term renders and reads input through a tcell terminal screen.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/platformer/render"
)

// Surface scales the world viewport onto the terminal grid. Each command
// fills the cells it covers with its palette colour.
type Surface struct {
	screen tcell.Screen
	ctx    render.Context
	cmds   []render.Command

	// Status is printed on the top row when set.
	Status string
}

func NewSurface(screen tcell.Screen, ctx render.Context) *Surface {
	return &Surface{screen: screen, ctx: ctx}
}

func (s *Surface) Clear() {
	s.cmds = s.cmds[:0]
}

func (s *Surface) Draw(cmd render.Command) {
	s.cmds = append(s.cmds, cmd)
}

func (s *Surface) Present() error {
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 || s.ctx.Width <= 0 || s.ctx.Height <= 0 {
		return nil
	}
	sx := float64(cols) / float64(s.ctx.Width)
	sy := float64(rows) / float64(s.ctx.Height)

	bg := tcell.StyleDefault.Background(tcell.FromImageColor(s.ctx.Palette.Background))
	fillCells(s.screen, 0, 0, cols, rows, bg)

	for _, cmd := range s.cmds {
		x0 := clampInt(int(math.Floor(cmd.Rect.Left()*sx)), 0, cols)
		x1 := clampInt(int(math.Ceil(cmd.Rect.Right()*sx)), 0, cols)
		y0 := clampInt(int(math.Floor(cmd.Rect.Top()*sy)), 0, rows)
		y1 := clampInt(int(math.Ceil(cmd.Rect.Bottom()*sy)), 0, rows)
		style := tcell.StyleDefault.Background(tcell.FromImageColor(s.ctx.Palette.Color(cmd.Style)))
		if cmd.Style.Rounded() && x1-x0 >= 3 && y1-y0 >= 2 {
			// leave the four corner cells as background
			fillCells(s.screen, x0+1, y0, x1-1, y1, style)
			fillCells(s.screen, x0, y0+1, x0+1, y1-1, style)
			fillCells(s.screen, x1-1, y0+1, x1, y1-1, style)
			continue
		}
		fillCells(s.screen, x0, y0, x1, y1, style)
	}

	if s.Status != "" {
		text := tcell.StyleDefault.Foreground(tcell.FromImageColor(s.ctx.Palette.Text)).
			Background(tcell.FromImageColor(s.ctx.Palette.Background))
		drawText(s.screen, 0, 0, s.Status, text)
	}
	s.screen.Show()
	return nil
}

func fillCells(screen tcell.Screen, x0, y0, x1, y1 int, style tcell.Style) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
