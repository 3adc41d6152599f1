package systems

import (
	"github.com/automoto/zoomcam/components"
	cfg "github.com/automoto/zoomcam/config"
	"github.com/automoto/zoomcam/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reused across frames to avoid allocating per draw
var visibleBlocks = make(map[*resolv.Object]struct{})

// DrawLevel samples the zoom divisor for this frame, stores it on the camera
// and draws the map blocks that fall inside the visible area.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	// Get camera
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// The divisor is sampled once per frame; everything drawn after reads camera.Zoom
	if cameraEntry.HasComponent(components.Zoom) {
		z := components.Zoom.Get(cameraEntry)
		camera.Zoom = z.State.Divisor(TickDelta(z.LastTickAt, now(), cfg.C.TPS))
	}

	// Safety check for zero zoom
	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = 1.0
	}

	screen.Fill(cfg.Menu.BackgroundColor)

	collectVisibleBlocks(ecs, camera, float64(width), float64(height), zoom)

	tags.Block.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e).Object
		if len(visibleBlocks) > 0 {
			if _, ok := visibleBlocks[o]; !ok {
				return
			}
		}
		block := components.Block.Get(e)

		// Camera transform: translate to camera-relative, scale by zoom, center on screen
		x := (o.X-camera.Position.X)*zoom + float64(width)/2
		y := (o.Y-camera.Position.Y)*zoom + float64(height)/2
		w := o.W * zoom
		h := o.H * zoom

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), block.Color, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, cfg.UI.BlockOutline, false)
	})
}

// collectVisibleBlocks moves the viewport object over the visible area and
// records the blocks sharing its cells. With no viewport the set stays empty
// and every block is drawn.
func collectVisibleBlocks(ecs *ecs.ECS, camera *components.CameraData, width, height, zoom float64) {
	clear(visibleBlocks)

	viewportEntry, ok := tags.Viewport.First(ecs.World)
	if !ok {
		return
	}
	viewport := components.Object.Get(viewportEntry).Object

	viewport.W = width / zoom
	viewport.H = height / zoom
	viewport.X = camera.Position.X - viewport.W/2
	viewport.Y = camera.Position.Y - viewport.H/2
	viewport.Update()

	check := viewport.Check(0, 0, tags.ResolvBlock)
	if check == nil {
		// Nothing on screen; use a sentinel so the draw loop skips every block
		visibleBlocks[viewport] = struct{}{}
		return
	}
	for _, o := range check.ObjectsByTags(tags.ResolvBlock) {
		visibleBlocks[o] = struct{}{}
	}
}
