package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

type Palette struct {
	Background color.RGBA
	Text       color.RGBA
	Styles     map[Style]color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 64, G: 200, B: 255, A: 0xff},
		Text:       colornames.Black,
		Styles: map[Style]color.RGBA{
			StyleGround:         {R: 64, G: 200, B: 64, A: 0xff},
			StyleFloating:       {R: 240, G: 255, B: 240, A: 0xff},
			StyleDecorative:     colornames.Lightgray,
			StyleMoving:         {R: 240, G: 255, B: 240, A: 0xff},
			StylePlayer:         {R: 255, G: 176, B: 176, A: 0xff},
			StylePlayerAirborne: {R: 255, G: 128, B: 128, A: 0xff},
			StyleFoe:            {R: 255, G: 32, B: 64, A: 0xff},
		},
	}
}

// Color returns the fill for s, magenta when the palette has no entry.
func (p Palette) Color(s Style) color.RGBA {
	if c, ok := p.Styles[s]; ok {
		return c
	}
	return colornames.Magenta
}
