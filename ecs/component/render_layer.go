package component

import "github.com/milk9111/platformer/ecs"

// RenderLayer is used to sort draw order deterministically.
type RenderLayer struct {
	Index int
}

const (
	LayerPlatforms = iota
	LayerFoes
	LayerPlayer
)

var RenderLayerComponent = ecs.NewComponent[RenderLayer]()
