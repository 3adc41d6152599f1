package components

import (
	"github.com/yohamta/donburi"
)

// SettingsMenuOption represents menu items in the settings menu
type SettingsMenuOption int

const (
	SettingsOptInitialZoom SettingsMenuOption = iota
	SettingsOptScrollIncrement
	SettingsOptMaxScrollTiers
	SettingsOptLinearLikeSteps
	SettingsOptRetainScrollTiers
	SettingsOptInitialKind
	SettingsOptScrollKind
	SettingsOptResetDefaults
	SettingsOptBack
)

// SettingsMenuData stores the current state of the settings menu overlay
type SettingsMenuData struct {
	IsOpen         bool
	SelectedOption SettingsMenuOption
	Dirty          bool // A value changed since the menu was opened
}

// SettingsMenu is the component type for settings menu state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
