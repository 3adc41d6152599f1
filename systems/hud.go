package systems

import (
	"fmt"

	"github.com/automoto/zoomcam/components"
	cfg "github.com/automoto/zoomcam/config"
	"github.com/automoto/zoomcam/fonts"
	"github.com/automoto/zoomcam/zoom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const hudWidth = 190

// DrawHUD renders the zoom state in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHUD {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || !cameraEntry.HasComponent(components.Zoom) {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	z := components.Zoom.Get(cameraEntry)

	lines := HUDLines(camera.Zoom, z.ScrollTier, cfg.Zoom.MaxScrollTiers, z.State.Snapshot())

	margin := cfg.UI.HUDMargin
	lineHeight := cfg.UI.HUDLineHeight
	vector.DrawFilledRect(screen,
		float32(margin), float32(margin),
		float32(hudWidth), float32(lineHeight*float64(len(lines))+margin),
		cfg.UI.HUDTextBgColor, false)

	face := fonts.Mono.Get()
	for i, line := range lines {
		textColor := cfg.UI.HUDTextColor
		if i == len(lines)-1 && z.State.Resetting() {
			textColor = cfg.UI.ResetTextColor
		}
		y := margin + lineHeight*float64(i+1)
		text.Draw(screen, line, face, int(margin)+4, int(y), textColor)
	}
}

// HUDLines formats the zoom state overlay.
func HUDLines(divisor float64, tier, maxTiers int, s zoom.Snapshot) []string {
	return []string{
		fmt.Sprintf("zoom    %6.3fx", divisor),
		fmt.Sprintf("tier    %d/%d", tier, maxTiers),
		fmt.Sprintf("initial %.3f -> %.3f", s.InitialPrev, s.InitialCurrent),
		fmt.Sprintf("scroll  %.3f -> %.3f", s.ScrollPrev, s.ScrollCurrent),
		fmt.Sprintf("reset   %t (%.3f)", s.Resetting, s.ResetMultiplier),
	}
}
