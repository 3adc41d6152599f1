package factory

import (
	"github.com/automoto/zoomcam/archetypes"
	"github.com/automoto/zoomcam/assets"
	"github.com/automoto/zoomcam/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, levelPath string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	loader := assets.NewLevelLoader()
	loaded := loader.MustLoadLevel(levelPath)

	components.Level.Set(level, &components.LevelData{
		CurrentLevel: &loaded,
	})

	return level
}
