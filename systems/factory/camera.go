package factory

import (
	"log"

	"github.com/automoto/zoomcam/archetypes"
	"github.com/automoto/zoomcam/components"
	cfg "github.com/automoto/zoomcam/config"
	"github.com/automoto/zoomcam/zoom"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera centred on start, with a zoom state at rest
// built from the current zoom config.
func CreateCamera(ecs *ecs.ECS, start math.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: start,
		Target:   start,
		Zoom:     1,
	})

	initial, scroll := ZoomInterpolators(cfg.Zoom)
	initialSpec, _ := cfg.Zoom.InitialSpec()
	scrollSpec, _ := cfg.Zoom.ScrollSpec()
	components.Zoom.SetValue(camera, components.ZoomData{
		State:       zoom.NewState(initial, scroll, cfg.ZoomSettings{}),
		InitialSpec: initialSpec,
		ScrollSpec:  scrollSpec,
	})

	return camera
}

// ZoomInterpolators builds both channel curves from z, falling back to the
// built-in curves if z cannot be built.
func ZoomInterpolators(z cfg.ZoomConfig) (initial, scroll zoom.Interpolator) {
	initial, scroll, err := z.Interpolators()
	if err != nil {
		log.Printf("Warning: Could not build zoom curves, using defaults: %v", err)
		initial, scroll, _ = cfg.DefaultZoom().Interpolators()
	}
	return initial, scroll
}
