package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nurture/components"
	"github.com/automoto/nurture/core"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keys and pads into every Input component.
// Must run before the systems that read actions.
func UpdateInput(e *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	components.Input.Each(e.World, func(entry *donburi.Entry) {
		input := components.Input.Get(entry)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [components.ActionCount]bool{}

		for actionID, binding := range Bindings {
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

		if !input.Primed {
			input.Previous = input.Current
			input.Primed = true
		}
	})
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id components.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

var playerKeys = map[components.ActionID]core.Key{
	components.ActionMoveLeft:  core.KeyLeft,
	components.ActionMoveRight: core.KeyRight,
	components.ActionJump:      core.KeyJump,
}

// PlayerInput converts this frame's actions into simulation input.
func PlayerInput(input *components.InputData) core.Input {
	var in core.Input
	for action, key := range playerKeys {
		state := GetAction(input, action)
		if state.Pressed {
			in.Held = in.Held.With(key)
		}
		if state.JustReleased {
			in.Released = in.Released.With(key)
		}
	}
	return in
}
