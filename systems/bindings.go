package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/nurture/components"
)

// InputBinding represents the keys and pad buttons bound to one action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every action to its keys. Movement uses arrows or WASD,
// toolbox commands use the brackets and Tab picks the child to command.
var Bindings = map[components.ActionID]InputBinding{
	components.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	components.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	components.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	components.ActionReset: {
		Keys:                   []ebiten.Key{ebiten.KeyR},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
	components.ActionNextLevel: {
		Keys: []ebiten.Key{ebiten.KeyN},
	},
	components.ActionCommandLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyBracketLeft, ebiten.KeyQ},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopLeft},
	},
	components.ActionCommandRight: {
		Keys:                   []ebiten.Key{ebiten.KeyBracketRight, ebiten.KeyE},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
	},
	components.ActionCycleChild: {
		Keys:                   []ebiten.Key{ebiten.KeyTab},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	components.ActionMenuUp: {
		Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	components.ActionMenuDown: {
		Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	components.ActionMenuSelect: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	components.ActionMenuBack: {
		Keys:                   []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
	},
}
