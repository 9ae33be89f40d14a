// Package screen paints draw commands onto an ebiten image.
package screen

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/render"
)

const ellipseSize = 64

// Surface buffers a frame and paints it onto the target image on Present.
// Set the target from Game.Draw before rendering.
type Surface struct {
	ctx    render.Context
	target *ebiten.Image
	cmds   []render.Command

	pixel   *ebiten.Image
	ellipse *ebiten.Image
}

func New(ctx render.Context) *Surface {
	return &Surface{ctx: ctx}
}

func (s *Surface) SetTarget(img *ebiten.Image) {
	s.target = img
}

func (s *Surface) Clear() {
	s.cmds = s.cmds[:0]
}

func (s *Surface) Draw(cmd render.Command) {
	s.cmds = append(s.cmds, cmd)
}

// Present is a no-op without a target; ebiten only hands out the screen
// inside Draw.
func (s *Surface) Present() error {
	if s.target == nil {
		return nil
	}
	s.init()
	s.target.Fill(s.ctx.Palette.Background)
	for _, cmd := range s.cmds {
		src := s.pixel
		w, h := 1.0, 1.0
		if cmd.Style.Rounded() {
			src = s.ellipse
			w, h = ellipseSize, ellipseSize
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(cmd.Rect.Width/w, cmd.Rect.Height/h)
		op.GeoM.Translate(cmd.Rect.X, cmd.Rect.Y)
		op.ColorScale.ScaleWithColor(s.ctx.Palette.Color(cmd.Style))
		op.Filter = ebiten.FilterLinear
		s.target.DrawImage(src, op)
	}
	return nil
}

func (s *Surface) init() {
	if s.pixel != nil {
		return
	}
	s.pixel = ebiten.NewImage(1, 1)
	s.pixel.Fill(color.White)
	s.ellipse = ebiten.NewImageFromImage(ellipseMask(ellipseSize))
}

// ellipseMask is a white disc on transparent, scaled per command into an
// ellipse.
func ellipseMask(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy <= r*r {
				img.Set(x, y, color.White)
			}
		}
	}
	return img
}
