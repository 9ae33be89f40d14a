package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/geom"
)

// PlatformIndex is the broad phase for static platforms. Static platforms
// never move, so their boxes are inserted into a Chipmunk space once and
// queried by bounding box every tick.
type PlatformIndex struct {
	space *cp.Space
	built bool
	count int
}

func NewPlatformIndex() *PlatformIndex {
	return &PlatformIndex{space: cp.NewSpace()}
}

// Build inserts every static platform of w. Later calls are no-ops.
func (pi *PlatformIndex) Build(w *ecs.World) {
	if pi == nil || pi.built || w == nil {
		return
	}
	for _, e := range w.Query(component.PlatformComponent) {
		p, ok := ecs.Get(w, e, component.PlatformComponent)
		if !ok || p.Kind != component.PlatformStatic {
			continue
		}
		shape := cp.NewBox2(pi.space.StaticBody, bbOf(p.Rect), 0)
		shape.UserData = e
		pi.space.AddShape(shape)
		pi.count++
	}
	pi.built = true
}

func (pi *PlatformIndex) Built() bool {
	return pi != nil && pi.built
}

// Space exposes the underlying Chipmunk space for debug drawing.
func (pi *PlatformIndex) Space() *cp.Space {
	if pi == nil {
		return nil
	}
	return pi.space
}

// Len returns the number of indexed platforms.
func (pi *PlatformIndex) Len() int {
	if pi == nil {
		return 0
	}
	return pi.count
}

// Candidates returns the static platforms whose boxes touch r, ordered by
// entity id. Touching boxes are included; callers do the exact test.
func (pi *PlatformIndex) Candidates(r geom.Rect) []ecs.Entity {
	if pi == nil || pi.count == 0 {
		return nil
	}
	var out []ecs.Entity
	pi.space.BBQuery(bbOf(r), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if e, ok := shape.UserData.(ecs.Entity); ok {
			out = append(out, e)
		}
	}, nil)
	ecs.SortEntities(out)
	return out
}

// bbOf maps a y-down rect onto a Chipmunk box; B holds the top edge.
func bbOf(r geom.Rect) cp.BB {
	return cp.BB{L: r.Left(), B: r.Top(), R: r.Right(), T: r.Bottom()}
}
