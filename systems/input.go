package systems

import (
	"github.com/automoto/portfolio-world/components"
	cfg "github.com/automoto/portfolio-world/config"
	"github.com/automoto/portfolio-world/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

var moveActions = [components.DirCount]cfg.ActionID{
	components.DirUp:    cfg.ActionMoveUp,
	components.DirDown:  cfg.ActionMoveDown,
	components.DirLeft:  cfg.ActionMoveLeft,
	components.DirRight: cfg.ActionMoveRight,
}

// UpdateInput polls raw devices and updates the Input singleton.
// Must run before every system that reads input.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	if !input.Captured {
		pollActions(input)
	}
	ApplyDirections(input)

	x, y := ebiten.CursorPosition()
	pointer := components.Vector{X: float64(x), Y: float64(y)}
	input.PointerMoved = pointer != input.Pointer
	input.Pointer = pointer

	// ebiten reports wheel-up as positive
	_, wy := ebiten.Wheel()
	input.ScrollDelta = -wy
}

func pollActions(input *components.InputData) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	left, right, up, down := analogStickState(gamepadIDs)
	input.Current[cfg.ActionMoveLeft] = input.Current[cfg.ActionMoveLeft] || left
	input.Current[cfg.ActionMoveRight] = input.Current[cfg.ActionMoveRight] || right
	input.Current[cfg.ActionMoveUp] = input.Current[cfg.ActionMoveUp] || up
	input.Current[cfg.ActionMoveDown] = input.Current[cfg.ActionMoveDown] || down
}

// ApplyDirections derives the held directions from the movement actions.
func ApplyDirections(input *components.InputData) {
	for d, a := range moveActions {
		input.Dirs[d] = input.Current[a]
	}
}

// analogStickState reads the left stick of every standard gamepad
func analogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}
	return
}

// DirectionVector turns the held directions into a unit vector.
// Opposing directions cancel; no input yields (0, 0).
func DirectionVector(dirs [components.DirCount]bool) (float64, float64) {
	x := gamemath.AxisFromBools(dirs[components.DirLeft], dirs[components.DirRight])
	y := gamemath.AxisFromBools(dirs[components.DirUp], dirs[components.DirDown])
	return gamemath.Normalize(x, y)
}
