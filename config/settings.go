package config

import "github.com/automoto/zoomcam/zoom"

// SettingsMenuConfig contains settings screen configuration
type SettingsMenuConfig struct {
	InitialZoomMin       int
	InitialZoomMax       int
	ScrollIncrementSteps []float64
	MaxScrollTierSteps   []int
	Kinds                []string // Interpolator names in display order
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	kinds := make([]string, 0, len(zoom.Kinds()))
	for _, k := range zoom.Kinds() {
		kinds = append(kinds, k.String())
	}

	SettingsMenu = SettingsMenuConfig{
		InitialZoomMin:       1,
		InitialZoomMax:       16,
		ScrollIncrementSteps: []float64{0, 0.25, 0.5, 1, 2, 3},
		MaxScrollTierSteps:   []int{0, 5, 10, 15, 20, 30},
		Kinds:                kinds,
	}
}
