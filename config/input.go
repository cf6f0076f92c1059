package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical page or game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionToggleGame
	ActionLeaveGame
	ActionToggleSound
	ActionToggleLanguage
	ActionCopyEmail
	ActionToggleDebug
	ActionToggleTheme
	ActionNextFilter
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			// WASD, ZQSD (AZERTY) and arrows all move the avatar
			ActionMoveUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW, ebiten.KeyZ},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMoveDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA, ebiten.KeyQ},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionToggleGame: {
				Keys: []ebiten.Key{ebiten.KeyG},
				// Start button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionLeaveGame: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionToggleSound: {
				Keys: []ebiten.Key{ebiten.KeyM},
			},
			ActionToggleLanguage: {
				Keys: []ebiten.Key{ebiten.KeyL},
			},
			ActionCopyEmail: {
				Keys: []ebiten.Key{ebiten.KeyC},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionToggleTheme: {
				Keys: []ebiten.Key{ebiten.KeyT},
			},
			ActionNextFilter: {
				Keys: []ebiten.Key{ebiten.KeyF},
			},
		},
	}
}
