// Package render describes what the simulation hands to a presentation
// surface each tick. It knows nothing about windows or terminals; those live
// in the screen and term subpackages.
package render

import (
	"fmt"
	"strings"

	"github.com/milk9111/platformer/geom"
)

// Style selects how a rectangle is painted.
type Style int

const (
	StyleNone Style = iota
	StyleGround
	StyleFloating
	StyleDecorative
	StyleMoving
	StylePlayer
	StylePlayerAirborne
	StyleFoe
)

var styleNames = map[Style]string{
	StyleNone:           "none",
	StyleGround:         "ground",
	StyleFloating:       "floating",
	StyleDecorative:     "decorative",
	StyleMoving:         "moving",
	StylePlayer:         "player",
	StylePlayerAirborne: "player_airborne",
	StyleFoe:            "foe",
}

func (s Style) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("style(%d)", int(s))
}

// Rounded reports whether the style is drawn as an ellipse inside its rect.
func (s Style) Rounded() bool {
	return s == StyleFloating || s == StyleMoving
}

// ParseStyle maps a level-file style name to a Style. An empty name is
// floating, the most common platform.
func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return StyleFloating, nil
	}
	for s, n := range styleNames {
		if n == name && s != StyleNone {
			return s, nil
		}
	}
	return StyleNone, fmt.Errorf("render: unknown style %q", name)
}

// Command is one rectangle to paint, already in screen space.
type Command struct {
	Rect  geom.Rect
	Style Style
}

// Surface accepts a frame of draw commands followed by Present.
type Surface interface {
	Clear()
	Draw(cmd Command)
	Present() error
}

// Context carries the presentation parameters the core needs. It is passed
// explicitly to whatever needs it.
type Context struct {
	Width   int
	Height  int
	Palette Palette
}

func NewContext(width, height int) Context {
	return Context{Width: width, Height: height, Palette: DefaultPalette()}
}

// Viewport returns the world-space size of the visible area at the origin.
func (c Context) Viewport() geom.Rect {
	return geom.Rect{Width: float64(c.Width), Height: float64(c.Height)}
}
