package systems

import (
	"strings"

	"github.com/automoto/zoomcam/components"
	cfg "github.com/automoto/zoomcam/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// Left stick directions merged into pan and menu actions
var stickActions = [4][2]cfg.ActionID{
	{cfg.ActionPanLeft, cfg.ActionMenuLeft},
	{cfg.ActionPanRight, cfg.ActionMenuRight},
	{cfg.ActionPanUp, cfg.ActionMenuUp},
	{cfg.ActionPanDown, cfg.ActionMenuDown},
}

// UpdateInput polls keyboard, gamepads and the mouse wheel into the Input
// component. Must run BEFORE UpdateZoom and UpdateCamera in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	keyboardUsed, activePad, padUsed := pollBindings(input)
	if pad, ok := pollLeftStick(input, gamepadIDs); ok {
		activePad, padUsed = pad, true
	}

	_, input.WheelY = ebiten.Wheel()
	pollZoomSteps(input)

	// Gamepad takes priority if both were used this frame
	switch {
	case padUsed:
		input.LastInputMethod = getControllerType(activePad)
	case keyboardUsed || input.WheelY != 0:
		input.LastInputMethod = components.InputKeyboard
	}
}

// pollBindings sets Current for every bound key or standard gamepad button
// held this frame.
func pollBindings(input *components.InputData) (keyboardUsed bool, pad ebiten.GamepadID, padUsed bool) {
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					pad, padUsed = gpID, true
				}
			}
		}
	}
	return keyboardUsed, pad, padUsed
}

// pollLeftStick merges left stick deflection past the deadzone into the
// directional actions. ok reports whether any stick was deflected.
func pollLeftStick(input *components.InputData, gamepads []ebiten.GamepadID) (pad ebiten.GamepadID, ok bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		for dir, held := range [4]bool{h < -deadzone, h > deadzone, v < -deadzone, v > deadzone} {
			if !held {
				continue
			}
			for _, a := range stickActions[dir] {
				input.Current[a] = true
			}
			pad, ok = gpID, true
		}
	}
	return pad, ok
}

// pollZoomSteps turns wheel movement and the zoom in/out actions into tier
// steps for this frame. Partial wheel movement is carried in WheelAccum.
func pollZoomSteps(input *components.InputData) {
	input.ZoomSteps, input.WheelAccum = WheelSteps(input.WheelAccum, input.WheelY, cfg.Input.WheelStep)
	if GetAction(input, cfg.ActionZoomIn).JustPressed {
		input.ZoomSteps++
	}
	if GetAction(input, cfg.ActionZoomOut).JustPressed {
		input.ZoomSteps--
	}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	method := components.InputXbox
	name := strings.ToLower(ebiten.GamepadName(gpID))
	for _, marker := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(name, marker) {
			method = components.InputPlayStation
			break
		}
	}

	controllerTypeCache[gpID] = method
	return method
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
