package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/zoomcam/assets"
	cfg "github.com/automoto/zoomcam/config"
	"github.com/automoto/zoomcam/systems"
	"github.com/automoto/zoomcam/systems/factory"

	"github.com/automoto/zoomcam/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ZoomScene is a Tiled map viewed through a pannable, zoomable camera.
type ZoomScene struct {
	ecs       *ecs.ECS
	levelPath string
	watcher   *cfg.Watcher
	zoomFile  string
	once      sync.Once
}

// NewZoomScene creates the scene for levelPath. When watcher is not nil,
// changes to zoomFile are applied while the scene runs.
func NewZoomScene(levelPath string, watcher *cfg.Watcher, zoomFile string) *ZoomScene {
	return &ZoomScene{
		levelPath: levelPath,
		watcher:   watcher,
		zoomFile:  zoomFile,
	}
}

func (zs *ZoomScene) Update() {
	zs.once.Do(zs.configure)
	zs.ecs.Update()
}

func (zs *ZoomScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if zs.ecs == nil {
		return
	}
	zs.ecs.Draw(screen)
}

func (zs *ZoomScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettingsMenu)

	// Zoom and camera are frozen while the settings overlay is open
	ecs.AddSystem(systems.WithMenuCheck(systems.WithZoomReload(zs.watcher, zs.zoomFile, systems.UpdateZoom)))
	ecs.AddSystem(systems.WithMenuCheck(systems.UpdateCamera))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.HUD, systems.DrawHUD)
	ecs.AddRenderer(cfg.HUD, systems.DrawSettingsMenu)

	zs.ecs = ecs

	// Create the level entity and load level data FIRST.
	level := factory.CreateLevel(zs.ecs, zs.levelPath)
	levelData := components.Level.Get(level)

	// Now create the space for culling using the level's dimensions.
	factory.CreateSpace(zs.ecs,
		levelData.CurrentLevel.Width,
		levelData.CurrentLevel.Height,
		16, 16,
	)

	for _, block := range levelData.CurrentLevel.Blocks {
		factory.CreateBlock(zs.ecs, block)
	}
	factory.CreateViewport(zs.ecs)

	factory.CreateCamera(zs.ecs, levelData.CurrentLevel.CameraStart)
}

// DefaultLevel is the map shown on startup.
const DefaultLevel = assets.DefaultLevel
