package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/zoomcam/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	InitialZoom       int     `json:"initialZoom"`
	ScrollIncrement   float64 `json:"scrollIncrement"`
	MaxScrollTiers    int     `json:"maxScrollTiers"`
	LinearLikeSteps   bool    `json:"linearLikeSteps"`
	RetainScrollTiers bool    `json:"retainScrollTiers"`
	InitialKind       string  `json:"initialKind"`
	ScrollKind        string  `json:"scrollKind"`
	Fullscreen        bool    `json:"fullscreen"`
	ShowHUD           bool    `json:"showHud"`
}

const settingsKey = "settings"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "zoomcam",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was saved.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings captures the live config for saving.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		InitialZoom:       cfg.Zoom.InitialZoom,
		ScrollIncrement:   cfg.Zoom.ScrollIncrement,
		MaxScrollTiers:    cfg.Zoom.MaxScrollTiers,
		LinearLikeSteps:   cfg.Zoom.LinearLikeSteps,
		RetainScrollTiers: cfg.Zoom.RetainScrollTiers,
		InitialKind:       cfg.Zoom.InitialKind,
		ScrollKind:        cfg.Zoom.ScrollKind,
		Fullscreen:        ebiten.IsFullscreen(),
		ShowHUD:           cfg.Debug.ShowHUD,
	}
}

// SaveCurrentSettings saves the live config
func SaveCurrentSettings() {
	_ = SaveSettings(CurrentSettings())
}

// ApplyTo returns base with the saved zoom values applied. The result is
// validated and base is returned unchanged if it fails.
func (s *SavedSettings) ApplyTo(base cfg.ZoomConfig) (cfg.ZoomConfig, error) {
	if s == nil {
		return base, nil
	}
	z := base
	z.InitialZoom = s.InitialZoom
	z.ScrollIncrement = s.ScrollIncrement
	z.MaxScrollTiers = s.MaxScrollTiers
	z.LinearLikeSteps = s.LinearLikeSteps
	z.RetainScrollTiers = s.RetainScrollTiers
	if s.InitialKind != "" {
		z.InitialKind = s.InitialKind
	}
	if s.ScrollKind != "" {
		z.ScrollKind = s.ScrollKind
	}
	if err := z.Validate(); err != nil {
		return base, err
	}
	return z, nil
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference
// Used during startup before the scene is created
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	z, err := saved.ApplyTo(cfg.Zoom)
	if err != nil {
		log.Printf("Warning: Ignoring saved zoom settings: %v", err)
	}
	cfg.Zoom = z
	cfg.Debug.ShowHUD = saved.ShowHUD

	// Apply fullscreen
	ebiten.SetFullscreen(saved.Fullscreen)
}
