package config

import "image/color"

// Config contains window/layout configuration
type Config struct {
	Width  int
	Height int
	TPS    int // Simulation ticks per second
}

// ZoomConfig contains the zoom tunables read by the zoom state every tick.
// Values can change at runtime from the settings menu or the tuning file.
type ZoomConfig struct {
	InitialZoom       int     // Divisor reached by holding the zoom key
	ScrollIncrement   float64 // Extra divisor per scroll tier (scaled by 3)
	MaxScrollTiers    int     // 0 disables scroll zoom
	LinearLikeSteps   bool    // Perceptually even scroll steps
	RetainScrollTiers bool    // Keep scroll tiers after releasing the zoom key

	// Initial channel curve
	InitialKind        string  // instant, linear, exponential, transition
	InitialCurve       string  // Easing curve for transition
	InitialInDuration  float64 // Seconds to zoom in
	InitialOutDuration float64 // Seconds to zoom out
	InitialSpeed       float64 // Units per second for linear
	InitialVelocity    float64 // Fraction per second for exponential

	// Scroll channel curve
	ScrollKind        string
	ScrollCurve       string
	ScrollInDuration  float64
	ScrollOutDuration float64
	ScrollSpeed       float64
	ScrollVelocity    float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	PanSpeed        float64 // World pixels per tick at divisor 1
	FollowSmoothing float64 // Fraction of remaining distance per tick
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HUDMargin      float64
	HUDLineHeight  float64
	HUDTextBgColor color.RGBA
	HUDTextColor   color.RGBA
	ResetTextColor color.RGBA
	BlockColor     color.RGBA // Fallback when a map block has no color
	BlockOutline   color.RGBA
	HUDFontSize    float64
}

// MenuConfig contains settings overlay configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHUD  bool   // Draw zoom state overlay
	ZoomFile string // Path to the YAML tuning file, empty disables it
}

// Global configuration instances
var C *Config
var Zoom ZoomConfig
var Camera CameraConfig
var UI UIConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Slate        = color.RGBA{R: 70, G: 80, B: 100, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Zoom = DefaultZoom()

	// Camera Config
	Camera = CameraConfig{
		PanSpeed:        4.0,
		FollowSmoothing: 0.2,
	}

	// UI Config
	UI = UIConfig{
		HUDMargin:      8,
		HUDLineHeight:  14,
		HUDTextBgColor: BlackOverlay,
		HUDTextColor:   White,
		ResetTextColor: LightRed,
		BlockColor:     Slate,
		BlockOutline:   color.RGBA{R: 20, G: 20, B: 30, A: 255},
		HUDFontSize:    10,
	}

	// Menu Config
	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    20,
		MenuItemGap:       6,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowHUD:  true,
		ZoomFile: "zoom.yaml",
	}
}

// DefaultZoom returns the built-in zoom tuning.
func DefaultZoom() ZoomConfig {
	return ZoomConfig{
		InitialZoom:       4,
		ScrollIncrement:   0.5,
		MaxScrollTiers:    10,
		LinearLikeSteps:   true,
		RetainScrollTiers: false,

		InitialKind:        "transition",
		InitialCurve:       "ease_out_exp",
		InitialInDuration:  1.0,
		InitialOutDuration: 0.5,
		InitialSpeed:       2.0,
		InitialVelocity:    8.0,

		ScrollKind:        "exponential",
		ScrollCurve:       "ease_out_quad",
		ScrollInDuration:  0.25,
		ScrollOutDuration: 0.25,
		ScrollSpeed:       2.0,
		ScrollVelocity:    8.0,
	}
}
