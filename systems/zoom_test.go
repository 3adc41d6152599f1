package systems

import (
	"testing"
	"time"

	"github.com/automoto/zoomcam/components"
	cfg "github.com/automoto/zoomcam/config"
	"github.com/automoto/zoomcam/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func newZoomWorld(t *testing.T) (*ecs.ECS, *components.ZoomData, *components.InputData) {
	t.Helper()
	saved := cfg.Zoom
	t.Cleanup(func() { cfg.Zoom = saved })
	cfg.Zoom = cfg.DefaultZoom()

	e := ecs.NewECS(donburi.NewWorld())
	camera := factory.CreateCamera(e, math.Vec2{X: 100, Y: 100})
	return e, components.Zoom.Get(camera), getOrCreateInput(e)
}

// tick simulates one UpdateInput frame with the given actions held.
func tick(e *ecs.ECS, input *components.InputData, wheel float64, held ...cfg.ActionID) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range held {
		input.Current[a] = true
	}
	input.WheelY = wheel
	pollZoomSteps(input)
	UpdateZoom(e)
}

func TestWheelSteps(t *testing.T) {
	cases := []struct {
		name      string
		accum     float64
		wheel     float64
		step      float64
		wantSteps int
		wantRest  float64
	}{
		{"none", 0, 0, 1, 0, 0},
		{"one_up", 0, 1, 1, 1, 0},
		{"one_down", 0, -1, 1, -1, 0},
		{"partial", 0, 0.4, 1, 0, 0.4},
		{"partial_completes", 0.75, 0.5, 1, 1, 0.25},
		{"trackpad_many", 0, 3.5, 1, 3, 0.5},
		{"zero_step_defaults", 0, 2, 0, 2, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			steps, rest := WheelSteps(c.accum, c.wheel, c.step)
			if steps != c.wantSteps || rest != c.wantRest {
				t.Fatalf("WheelSteps = (%d, %v), want (%d, %v)", steps, rest, c.wantSteps, c.wantRest)
			}
		})
	}
}

func TestClampTier(t *testing.T) {
	cases := []struct {
		name     string
		tier     int
		maxTiers int
		want     int
	}{
		{"inside", 3, 10, 3},
		{"below", -2, 10, 0},
		{"above", 12, 10, 10},
		{"disabled", 4, 0, 0},
		{"negative_max", 4, -1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ClampTier(c.tier, c.maxTiers); got != c.want {
				t.Fatalf("ClampTier(%d, %d) = %d, want %d", c.tier, c.maxTiers, got, c.want)
			}
		})
	}
}

func TestTickDelta(t *testing.T) {
	base := time.Unix(1000, 0)
	tick := time.Second / 60
	cases := []struct {
		name string
		last time.Time
		now  time.Time
		want float64
	}{
		{"never_ticked", time.Time{}, base, 1},
		{"same_instant", base, base, 0},
		{"half", base, base.Add(tick / 2), 0.5},
		{"late", base, base.Add(3 * tick), 1},
		{"clock_skew", base, base.Add(-tick), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := TickDelta(c.last, c.now, 60); got < c.want-1e-9 || got > c.want+1e-9 {
				t.Fatalf("TickDelta = %v, want %v", got, c.want)
			}
		})
	}
}

func TestZoomScaleChanged(t *testing.T) {
	base := cfg.DefaultZoom()
	cases := []struct {
		name        string
		mutate      func(z *cfg.ZoomConfig)
		wantInitial bool
		wantScroll  bool
	}{
		{"nothing", func(z *cfg.ZoomConfig) {}, false, false},
		{"magnitude", func(z *cfg.ZoomConfig) { z.InitialZoom = 8 }, true, false},
		{"tiers", func(z *cfg.ZoomConfig) { z.MaxScrollTiers = 5 }, false, true},
		{"increment", func(z *cfg.ZoomConfig) { z.ScrollIncrement = 2 }, false, true},
		{"linear_like", func(z *cfg.ZoomConfig) { z.LinearLikeSteps = !z.LinearLikeSteps }, false, true},
		{"curve_only", func(z *cfg.ZoomConfig) { z.ScrollKind = "linear" }, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			next := base
			c.mutate(&next)
			initial, scroll := ZoomScaleChanged(base, next)
			if initial != c.wantInitial || scroll != c.wantScroll {
				t.Fatalf("ZoomScaleChanged = (%v, %v), want (%v, %v)", initial, scroll, c.wantInitial, c.wantScroll)
			}
		})
	}
}

func TestUpdateZoomHoldAndRelease(t *testing.T) {
	e, z, input := newZoomWorld(t)

	for i := 0; i < 120; i++ {
		tick(e, input, 0, cfg.ActionZoom)
	}
	if got, want := z.State.CurrentDivisor(), float64(cfg.Zoom.InitialZoom); got < want-1e-6 || got > want+1e-6 {
		t.Fatalf("held divisor = %v, want %v", got, want)
	}
	if z.LastTickAt.IsZero() {
		t.Fatalf("LastTickAt not stamped")
	}

	// Scroll two tiers in while held
	tick(e, input, 1, cfg.ActionZoom)
	tick(e, input, 1, cfg.ActionZoom)
	if z.ScrollTier != 2 {
		t.Fatalf("ScrollTier = %d, want 2", z.ScrollTier)
	}
	for i := 0; i < 10; i++ {
		tick(e, input, 0, cfg.ActionZoom)
	}
	zoomed := z.State.CurrentDivisor()
	if zoomed <= float64(cfg.Zoom.InitialZoom) {
		t.Fatalf("scrolled divisor = %v, want above %d", zoomed, cfg.Zoom.InitialZoom)
	}

	// Releasing drops the tiers and starts a reset
	tick(e, input, 0)
	if z.ScrollTier != 0 {
		t.Fatalf("ScrollTier after release = %d, want 0", z.ScrollTier)
	}
	if !z.State.Resetting() {
		t.Fatalf("expected a reset after release")
	}

	for i := 0; i < 240; i++ {
		tick(e, input, 0)
	}
	if got := z.State.CurrentDivisor(); got != 1 {
		t.Fatalf("divisor at rest = %v, want 1", got)
	}
	if z.State.Resetting() {
		t.Fatalf("reset should release once both channels are at zero")
	}
}

func TestUpdateZoomRetainsTiers(t *testing.T) {
	e, z, input := newZoomWorld(t)
	cfg.Zoom.RetainScrollTiers = true

	tick(e, input, 0, cfg.ActionZoom)
	tick(e, input, 0, cfg.ActionZoom, cfg.ActionZoomIn)
	tick(e, input, 0, cfg.ActionZoom)
	tick(e, input, 0)
	if z.ScrollTier != 1 {
		t.Fatalf("ScrollTier = %d, want 1", z.ScrollTier)
	}
	if z.State.Resetting() {
		t.Fatalf("retained tiers must not start a reset")
	}

	// The reset action still clears them
	tick(e, input, 0, cfg.ActionZoomReset)
	if z.ScrollTier != 0 {
		t.Fatalf("ScrollTier after reset = %d, want 0", z.ScrollTier)
	}
}

func TestUpdateZoomIgnoresWheelWhenNotZooming(t *testing.T) {
	e, z, input := newZoomWorld(t)

	tick(e, input, 3.5)
	if z.ScrollTier != 0 || input.WheelAccum != 0 {
		t.Fatalf("tier %d accum %v, want 0 and 0", z.ScrollTier, input.WheelAccum)
	}
}

func TestUpdateZoomSkip(t *testing.T) {
	e, z, input := newZoomWorld(t)

	tick(e, input, 0, cfg.ActionZoom, cfg.ActionSkipZoom)
	if got := z.State.Snapshot().InitialCurrent; got != 1 {
		t.Fatalf("initial after skip = %v, want 1", got)
	}
}

func TestApplyZoomConfigSwapsCurvesAndZeroes(t *testing.T) {
	e, z, input := newZoomWorld(t)

	for i := 0; i < 30; i++ {
		tick(e, input, 1, cfg.ActionZoom)
	}

	next := cfg.Zoom
	next.ScrollKind = "instant"
	ApplyZoomConfig(e, next)
	if z.ScrollSpec.Kind.String() != "instant" {
		t.Fatalf("scroll spec = %v, want instant", z.ScrollSpec.Kind)
	}
	if z.ScrollTier == 0 {
		t.Fatalf("a curve change must keep the tier")
	}

	next = cfg.Zoom
	next.MaxScrollTiers = 5
	ApplyZoomConfig(e, next)
	snap := z.State.Snapshot()
	if z.ScrollTier != 0 || snap.ScrollCurrent != 0 {
		t.Fatalf("tier %d scroll %v, want both zeroed", z.ScrollTier, snap.ScrollCurrent)
	}
	if snap.InitialCurrent == 0 {
		t.Fatalf("initial channel should be left alone")
	}
}
