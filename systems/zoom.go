package systems

import (
	"log"
	"math"
	"time"

	"github.com/automoto/zoomcam/components"
	cfg "github.com/automoto/zoomcam/config"
	"github.com/automoto/zoomcam/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// now is swapped in tests.
var now = time.Now

// UpdateZoom feeds this tick's input into the camera's zoom state.
// Must run after UpdateInput and before UpdateCamera.
func UpdateZoom(ecs *ecs.ECS) {
	entry, ok := components.Zoom.First(ecs.World)
	if !ok {
		return
	}
	z := components.Zoom.Get(entry)
	input := getOrCreateInput(ecs)

	syncInterpolators(z)

	zoomAction := GetAction(input, cfg.ActionZoom)
	zooming := zoomAction.Pressed

	if zooming {
		z.ScrollTier = ClampTier(z.ScrollTier+input.ZoomSteps, cfg.Zoom.MaxScrollTiers)
	} else {
		// Steps only count while zooming; drop partial wheel movement too
		input.WheelAccum = 0
		// The menu can lower the maximum while tiers are retained.
		z.ScrollTier = ClampTier(z.ScrollTier, cfg.Zoom.MaxScrollTiers)
	}

	if zoomAction.JustReleased && !cfg.Zoom.RetainScrollTiers {
		z.ScrollTier = 0
		z.State.BeginReset()
	}
	if GetAction(input, cfg.ActionZoomReset).JustPressed {
		z.ScrollTier = 0
		z.State.BeginReset()
	}
	if GetAction(input, cfg.ActionSkipZoom).JustPressed {
		z.State.SkipInitialTransition()
	}

	z.State.Advance(zooming, z.ScrollTier, 1/float64(cfg.C.TPS))
	z.LastTickAt = now()
}

// WithZoomReload wraps system so that a changed tuning file is applied to
// the zoom config before it runs. A nil watcher leaves system unchanged.
func WithZoomReload(w *cfg.Watcher, path string, system ecs.System) ecs.System {
	if w == nil {
		return system
	}
	return func(e *ecs.ECS) {
		select {
		case err := <-w.Errors:
			log.Printf("Warning: Zoom file watcher: %v", err)
		default:
		}
		if w.Poll() {
			ReloadZoomFile(e, path)
		}
		system(e)
	}
}

// ReloadZoomFile applies path on top of the current zoom config. An invalid
// file is logged and ignored. Scroll tiers are dropped when their meaning
// changed.
func ReloadZoomFile(e *ecs.ECS, path string) {
	next, err := cfg.LoadZoomFile(path, cfg.Zoom)
	if err != nil {
		log.Printf("Warning: Could not reload zoom file: %v", err)
		return
	}
	ApplyZoomConfig(e, next)
	log.Printf("Reloaded zoom settings from %s", path)
}

// ApplyZoomConfig replaces the global zoom config. Channels whose scale
// changed are zeroed so they do not jump to a new magnitude mid-zoom.
func ApplyZoomConfig(e *ecs.ECS, next cfg.ZoomConfig) {
	prev := cfg.Zoom
	cfg.Zoom = next

	entry, ok := components.Zoom.First(e.World)
	if !ok {
		return
	}
	z := components.Zoom.Get(entry)
	initialChanged, scrollChanged := ZoomScaleChanged(prev, next)
	if initialChanged || scrollChanged {
		z.State.ZeroOut(initialChanged, scrollChanged)
	}
	if scrollChanged {
		z.ScrollTier = 0
	}
	syncInterpolators(z)
}

// ZoomScaleChanged reports which channels mean something different after
// moving from prev to next.
func ZoomScaleChanged(prev, next cfg.ZoomConfig) (initial, scroll bool) {
	initial = prev.InitialZoom != next.InitialZoom
	scroll = prev.MaxScrollTiers != next.MaxScrollTiers ||
		prev.ScrollIncrement != next.ScrollIncrement ||
		prev.LinearLikeSteps != next.LinearLikeSteps
	return initial, scroll
}

// syncInterpolators rebuilds the channel curves when the config asks for
// different ones than the state is using.
func syncInterpolators(z *components.ZoomData) {
	initialSpec, err := cfg.Zoom.InitialSpec()
	if err != nil {
		return
	}
	scrollSpec, err := cfg.Zoom.ScrollSpec()
	if err != nil {
		return
	}
	if initialSpec == z.InitialSpec && scrollSpec == z.ScrollSpec {
		return
	}

	initial, scroll := factory.ZoomInterpolators(cfg.Zoom)
	z.State.SetInterpolators(initial, scroll)
	z.InitialSpec = initialSpec
	z.ScrollSpec = scrollSpec
}

// WheelSteps turns accumulated wheel movement into whole tier steps. Scrolling
// up zooms in. The remainder is carried into the next tick.
func WheelSteps(accum, wheelY, step float64) (steps int, rest float64) {
	if step <= 0 {
		step = 1
	}
	accum += wheelY
	whole := math.Trunc(accum / step)
	return int(whole), accum - whole*step
}

// ClampTier limits tier to [0, maxTiers].
func ClampTier(tier, maxTiers int) int {
	if maxTiers < 0 {
		maxTiers = 0
	}
	return max(0, min(tier, maxTiers))
}

// TickDelta is how far the render is between the last tick at last and the
// next one, in [0, 1].
func TickDelta(last, now time.Time, tps int) float64 {
	if last.IsZero() || tps <= 0 {
		return 1
	}
	tick := time.Second / time.Duration(tps)
	delta := float64(now.Sub(last)) / float64(tick)
	return math.Max(0, math.Min(1, delta))
}
