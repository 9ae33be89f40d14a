package system

import (
	"sort"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/geom"
	"github.com/milk9111/platformer/render"
)

// RenderSystem turns the world into screen-space draw commands.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw emits one frame to surface and presents it. Entities entirely outside
// the camera viewport are skipped.
func (r *RenderSystem) Draw(w *ecs.World, surface render.Surface) error {
	if r == nil || w == nil || surface == nil {
		return nil
	}

	var view geom.Rect
	if camEntity, ok := w.First(component.CameraComponent); ok {
		cam, _ := ecs.Get(w, camEntity, component.CameraComponent)
		view = cam.Viewport
	}
	screen := geom.Rect{Width: view.Width, Height: view.Height}

	entities := w.Query(component.RenderLayerComponent)
	sort.SliceStable(entities, func(i, j int) bool {
		li, _ := ecs.Get(w, entities[i], component.RenderLayerComponent)
		lj, _ := ecs.Get(w, entities[j], component.RenderLayerComponent)
		return li.Index < lj.Index
	})

	surface.Clear()
	for _, e := range entities {
		rect, style, ok := appearance(w, e)
		if !ok {
			continue
		}
		onScreen := rect.Translate(-view.X, -view.Y)
		if screen.Valid() && !onScreen.Intersects(screen) {
			continue
		}
		surface.Draw(render.Command{Rect: onScreen, Style: style})
	}
	return surface.Present()
}

func appearance(w *ecs.World, e ecs.Entity) (geom.Rect, render.Style, bool) {
	if p, ok := ecs.Get(w, e, component.PlatformComponent); ok {
		return p.Rect, p.Style, true
	}
	body, ok := ecs.Get(w, e, component.BodyComponent)
	if !ok {
		return geom.Rect{}, render.StyleNone, false
	}
	switch body.Kind {
	case component.BodyPlayer:
		if body.Grounded {
			return body.Rect, render.StylePlayer, true
		}
		return body.Rect, render.StylePlayerAirborne, true
	case component.BodyFoe:
		return body.Rect, render.StyleFoe, true
	}
	return geom.Rect{}, render.StyleNone, false
}
