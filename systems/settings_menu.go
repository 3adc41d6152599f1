package systems

import (
	"fmt"
	"log"

	"github.com/automoto/zoomcam/components"
	cfg "github.com/automoto/zoomcam/config"
	"github.com/automoto/zoomcam/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// UpdateSettingsMenu opens and closes the settings overlay and edits the
// zoom config while it is open.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionToggleHUD).JustPressed {
		cfg.Debug.ShowHUD = !cfg.Debug.ShowHUD
	}

	if !settings.IsOpen {
		if GetAction(input, cfg.ActionSettings).JustPressed {
			OpenSettings(e)
		}
		return
	}

	// Navigate up
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		navigateUp(settings)
	}

	// Navigate down
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		navigateDown(settings)
	}

	// Adjust value left
	if GetAction(input, cfg.ActionMenuLeft).JustPressed {
		adjustValue(e, settings, -1)
	}

	// Adjust value right
	if GetAction(input, cfg.ActionMenuRight).JustPressed {
		adjustValue(e, settings, +1)
	}

	// Select/Enter - for toggles, reset and Back
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		handleSelect(e, settings)
	}

	// B/Circle, Start, or Escape to go back
	if GetAction(input, cfg.ActionMenuBack).JustPressed ||
		GetAction(input, cfg.ActionSettings).JustPressed {
		closeSettings(settings)
	}
}

// WithMenuCheck skips system while the settings overlay is open.
func WithMenuCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsSettingsOpen(e) {
			return
		}
		system(e)
	}
}

// navigateUp moves selection up, wrapping at the top
func navigateUp(s *components.SettingsMenuData) {
	s.SelectedOption = components.SettingsMenuOption(
		(int(s.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions,
	)
}

// navigateDown moves selection down, wrapping at the bottom
func navigateDown(s *components.SettingsMenuData) {
	s.SelectedOption = components.SettingsMenuOption(
		(int(s.SelectedOption) + 1) % numSettingsOptions,
	)
}

// adjustValue changes the value for the selected option
func adjustValue(e *ecs.ECS, s *components.SettingsMenuData, direction int) {
	next, ok := AdjustZoomOption(cfg.Zoom, s.SelectedOption, direction)
	if !ok {
		return
	}
	if err := next.Validate(); err != nil {
		log.Printf("Warning: Rejected settings change: %v", err)
		return
	}
	ApplyZoomConfig(e, next)
	s.Dirty = true
}

// AdjustZoomOption returns z with opt stepped in direction. ok is false for
// options that are not values.
func AdjustZoomOption(z cfg.ZoomConfig, opt components.SettingsMenuOption, direction int) (next cfg.ZoomConfig, ok bool) {
	next = z
	switch opt {
	case components.SettingsOptInitialZoom:
		next.InitialZoom = max(cfg.SettingsMenu.InitialZoomMin,
			min(cfg.SettingsMenu.InitialZoomMax, z.InitialZoom+direction))

	case components.SettingsOptScrollIncrement:
		steps := cfg.SettingsMenu.ScrollIncrementSteps
		next.ScrollIncrement = steps[stepIndex(findClosestStepIndex(z.ScrollIncrement, steps), direction, len(steps))]

	case components.SettingsOptMaxScrollTiers:
		steps := cfg.SettingsMenu.MaxScrollTierSteps
		next.MaxScrollTiers = steps[stepIndex(findClosestIntStepIndex(z.MaxScrollTiers, steps), direction, len(steps))]

	case components.SettingsOptLinearLikeSteps:
		next.LinearLikeSteps = !z.LinearLikeSteps

	case components.SettingsOptRetainScrollTiers:
		next.RetainScrollTiers = !z.RetainScrollTiers

	case components.SettingsOptInitialKind:
		next.InitialKind = cycleKind(z.InitialKind, direction)

	case components.SettingsOptScrollKind:
		next.ScrollKind = cycleKind(z.ScrollKind, direction)

	default:
		return z, false
	}
	return next, true
}

// stepIndex moves idx by direction, clamped to [0, n)
func stepIndex(idx, direction, n int) int {
	return max(0, min(n-1, idx+direction))
}

// findClosestStepIndex finds the closest step index for a value
func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := -1.0
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if minDiff < 0 || diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

func findClosestIntStepIndex(value int, steps []int) int {
	floats := make([]float64, len(steps))
	for i, s := range steps {
		floats[i] = float64(s)
	}
	return findClosestStepIndex(float64(value), floats)
}

// cycleKind returns the interpolator name direction places after current,
// wrapping around. Unknown names start from the first kind.
func cycleKind(current string, direction int) string {
	kinds := cfg.SettingsMenu.Kinds
	idx := -1
	for i, k := range kinds {
		if k == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		return kinds[0]
	}
	n := len(kinds)
	return kinds[((idx+direction)%n+n)%n]
}

// handleSelect handles the select/enter action
func handleSelect(e *ecs.ECS, s *components.SettingsMenuData) {
	switch s.SelectedOption {
	case components.SettingsOptLinearLikeSteps, components.SettingsOptRetainScrollTiers:
		adjustValue(e, s, +1)

	case components.SettingsOptResetDefaults:
		ApplyZoomConfig(e, cfg.DefaultZoom())
		s.Dirty = true

	case components.SettingsOptBack:
		closeSettings(s)
	}
}

// closeSettings closes the settings menu and saves settings
func closeSettings(s *components.SettingsMenuData) {
	s.IsOpen = false
	if s.Dirty {
		SaveCurrentSettings()
		s.Dirty = false
	}
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)

	if !settings.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Dim the scene behind the overlay
	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.BlackOverlay,
		false,
	)

	fontFace := fonts.Bold.Get()
	titleFont := fonts.Title.Get()

	// Draw title centered near top
	title := "ZOOM SETTINGS"
	titleWidth := len(title) * 14
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, 35, cfg.Menu.TitleColor)

	// Center the menu vertically in the available space
	menuItemHeight := cfg.Menu.MenuItemHeight
	menuItemGap := cfg.Menu.MenuItemGap
	totalMenuHeight := float64(numSettingsOptions) * (menuItemHeight + menuItemGap)
	startY := (height-totalMenuHeight)/2 + 10

	for i := 0; i < numSettingsOptions; i++ {
		opt := components.SettingsMenuOption(i)
		y := startY + float64(i)*(menuItemHeight+menuItemGap)

		// Determine color based on selection
		textColor := cfg.Menu.TextColorNormal
		if opt == settings.SelectedOption {
			textColor = cfg.Menu.TextColorSelected
		}

		label, value := getOptionDisplay(cfg.Zoom, opt)

		labelX := int(width/2) - 140
		text.Draw(screen, label, fontFace, labelX, int(y)+int(menuItemHeight), textColor)
		if value != "" {
			valueX := int(width/2) + 50
			text.Draw(screen, value, fontFace, valueX, int(y)+int(menuItemHeight), textColor)
		}
	}

	// Draw navigation hint at bottom based on input method
	input := getOrCreateInput(e)
	hint := getSettingsHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 5
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Menu.TextColorNormal)
}

// getSettingsHint returns the appropriate hint for settings menu
func getSettingsHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Left/Right: Change   Cross: Select   Circle: Back"
	case components.InputXbox:
		return "D-Pad: Navigate   Left/Right: Change   A: Select   B: Back"
	}
	return "Arrows: Navigate   Left/Right: Change   Enter: Select   Esc: Back"
}

// getOptionDisplay returns the label and value display for an option
func getOptionDisplay(z cfg.ZoomConfig, opt components.SettingsMenuOption) (string, string) {
	switch opt {
	case components.SettingsOptInitialZoom:
		return "Zoom Magnitude", fmt.Sprintf("< %dx >", z.InitialZoom)
	case components.SettingsOptScrollIncrement:
		return "Scroll Increment", fmt.Sprintf("< %.2f >", z.ScrollIncrement)
	case components.SettingsOptMaxScrollTiers:
		if z.MaxScrollTiers == 0 {
			return "Scroll Tiers", "< Off >"
		}
		return "Scroll Tiers", fmt.Sprintf("< %d >", z.MaxScrollTiers)
	case components.SettingsOptLinearLikeSteps:
		return "Even Steps", formatToggle(z.LinearLikeSteps)
	case components.SettingsOptRetainScrollTiers:
		return "Retain Tiers", formatToggle(z.RetainScrollTiers)
	case components.SettingsOptInitialKind:
		return "Zoom Curve", fmt.Sprintf("< %s >", z.InitialKind)
	case components.SettingsOptScrollKind:
		return "Scroll Curve", fmt.Sprintf("< %s >", z.ScrollKind)
	case components.SettingsOptResetDefaults:
		return "Reset Defaults", ""
	case components.SettingsOptBack:
		return "< Back", ""
	default:
		return "", ""
	}
}

// formatToggle formats a boolean as On/Off
func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))
		components.SettingsMenu.SetValue(ent, components.SettingsMenuData{
			SelectedOption: components.SettingsOptInitialZoom,
		})
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}

// OpenSettings opens the settings menu on the first option
func OpenSettings(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.SelectedOption = components.SettingsOptInitialZoom
	settings.Dirty = false
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	settings := GetOrCreateSettingsMenu(e)
	return settings.IsOpen
}
