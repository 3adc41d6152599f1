package config

import (
	"strings"
	"testing"

	"github.com/automoto/zoomcam/zoom"
)

func TestDefaultZoomIsValid(t *testing.T) {
	if err := DefaultZoom().Validate(); err != nil {
		t.Fatalf("default zoom config invalid: %v", err)
	}
}

func TestZoomConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(z *ZoomConfig)
		wantErr string
	}{
		{"negative_tiers", func(z *ZoomConfig) { z.MaxScrollTiers = -1 }, "max scroll tiers"},
		{"negative_increment", func(z *ZoomConfig) { z.ScrollIncrement = -0.5 }, "scroll increment"},
		{"zero_magnitude", func(z *ZoomConfig) { z.InitialZoom = 0 }, "initial zoom"},
		{"zero_linear_speed", func(z *ZoomConfig) { z.InitialKind = "linear"; z.InitialSpeed = 0 }, "linear speed"},
		{"zero_tiers_ok", func(z *ZoomConfig) { z.MaxScrollTiers = 0 }, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			z := DefaultZoom()
			c.mutate(&z)
			err := z.Validate()
			if c.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), c.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, c.wantErr)
			}
		})
	}
}

func TestZoomSettingsReadsLiveConfig(t *testing.T) {
	saved := Zoom
	t.Cleanup(func() { Zoom = saved })

	var s zoom.Settings = ZoomSettings{}
	Zoom.InitialZoom = 3
	Zoom.MaxScrollTiers = 7
	if s.InitialZoom() != 3 || s.MaxScrollTiers() != 7 {
		t.Fatalf("got %d/%d, want 3/7", s.InitialZoom(), s.MaxScrollTiers())
	}

	Zoom.InitialZoom = 9
	Zoom.LinearLikeSteps = false
	Zoom.ScrollIncrement = 2
	if s.InitialZoom() != 9 || s.LinearLikeSteps() || s.ScrollIncrement() != 2 {
		t.Fatalf("settings did not follow config changes")
	}
}

func TestZoomConfigInterpolators(t *testing.T) {
	z := DefaultZoom()
	z.InitialKind = "instant"
	z.ScrollKind = "linear"

	initial, scroll, err := z.Interpolators()
	if err != nil {
		t.Fatalf("Interpolators: %v", err)
	}
	if _, ok := initial.(zoom.Instant); !ok {
		t.Fatalf("initial = %T, want zoom.Instant", initial)
	}
	if l, ok := scroll.(zoom.Linear); !ok || l.Speed != z.ScrollSpeed {
		t.Fatalf("scroll = %#v, want zoom.Linear with speed %v", scroll, z.ScrollSpeed)
	}
}
