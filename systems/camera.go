package systems

import (
	"math"

	"github.com/automoto/zoomcam/components"
	"github.com/automoto/zoomcam/config"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateCamera pans the camera from input and keeps the visible area inside
// the level at the zoom drawn last frame.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = 1.0
	}

	// Pan slower when zoomed in so the on-screen speed stays the same
	input := getOrCreateInput(e)
	speed := config.Camera.PanSpeed / zoom
	if input.Current[config.ActionPanLeft] {
		camera.Target.X -= speed
	}
	if input.Current[config.ActionPanRight] {
		camera.Target.X += speed
	}
	if input.Current[config.ActionPanUp] {
		camera.Target.Y -= speed
	}
	if input.Current[config.ActionPanDown] {
		camera.Target.Y += speed
	}

	level := levelData.CurrentLevel
	camera.Target = ClampToLevel(camera.Target,
		float64(config.C.Width), float64(config.C.Height),
		float64(level.Width), float64(level.Height), zoom)

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X += (camera.Target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (camera.Target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}

// ClampToLevel constrains a camera centre so a screen of the given size,
// shrunk by zoom, stays inside the level. An axis where the visible area is
// larger than the level is centred.
func ClampToLevel(target dmath.Vec2, screenW, screenH, levelW, levelH, zoom float64) dmath.Vec2 {
	halfW := screenW / zoom / 2
	halfH := screenH / zoom / 2
	return dmath.Vec2{
		X: clampAxis(target.X, halfW, levelW),
		Y: clampAxis(target.Y, halfH, levelH),
	}
}

func clampAxis(v, half, size float64) float64 {
	if half*2 >= size {
		return size / 2
	}
	return math.Max(half, math.Min(size-half, v))
}
