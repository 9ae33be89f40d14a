// Package geom holds the axis-aligned rectangle math shared by every system.
// Coordinates are world pixels with the origin at the top-left and y growing
// downward.
package geom

import (
	"errors"
	"fmt"

	"github.com/milk9111/platformer/common"
)

var ErrDegenerate = errors.New("geom: rectangle must have positive width and height")

type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect returns a rectangle or ErrDegenerate when either side is not positive.
func NewRect(x, y, w, h float64) (Rect, error) {
	r := Rect{X: x, Y: y, Width: w, Height: h}
	if !r.Valid() {
		return Rect{}, fmt.Errorf("geom: %vx%v at (%v,%v): %w", w, h, x, y, ErrDegenerate)
	}
	return r, nil
}

func (r Rect) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Intersects reports whether the interiors overlap. Rectangles that only
// share an edge do not intersect, so a body resting exactly on a platform top
// is not overlapping it.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// CenteredOn returns r moved so its center is (cx, cy).
func (r Rect) CenteredOn(cx, cy float64) Rect {
	r.X = cx - r.Width/2
	r.Y = cy - r.Height/2
	return r
}

// ClampWithin keeps r inside bounds on each axis. On an axis where r is not
// smaller than bounds, r is pinned to the bounds' origin edge.
func (r Rect) ClampWithin(bounds Rect) Rect {
	r.X = clampAxis(r.X, r.Width, bounds.X, bounds.Width)
	r.Y = clampAxis(r.Y, r.Height, bounds.Y, bounds.Height)
	return r
}

func clampAxis(pos, size, lo, extent float64) float64 {
	if size >= extent {
		return lo
	}
	return common.Clamp(pos, lo, lo+extent-size)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}
