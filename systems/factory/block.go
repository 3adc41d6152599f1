package factory

import (
	"github.com/automoto/zoomcam/archetypes"
	"github.com/automoto/zoomcam/assets"
	"github.com/automoto/zoomcam/components"
	cfg "github.com/automoto/zoomcam/config"
	"github.com/automoto/zoomcam/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateBlock(ecs *ecs.ECS, b assets.Block) *donburi.Entry {
	block := archetypes.Block.Spawn(ecs)

	obj := resolv.NewObject(b.X, b.Y, b.Width, b.Height, tags.ResolvBlock)
	obj.SetShape(resolv.NewRectangle(0, 0, b.Width, b.Height))
	obj.Data = block // Link for O(1) lookup

	components.Object.SetValue(block, components.ObjectData{Object: obj})

	fill := cfg.UI.BlockColor
	if b.HasColor {
		fill = b.Color
	}
	components.Block.SetValue(block, components.BlockData{Color: fill})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return block
}

// CreateViewport spawns the object used to query which blocks are on screen.
func CreateViewport(ecs *ecs.ECS) *donburi.Entry {
	viewport := archetypes.Viewport.Spawn(ecs)

	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvViewport)
	obj.Data = viewport

	components.Object.SetValue(viewport, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return viewport
}
