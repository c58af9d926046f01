package components

import "github.com/yohamta/donburi"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionReset
	ActionNextLevel
	ActionCommandLeft
	ActionCommandRight
	ActionCycleChild
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionCount // Must be last - used for array sizing
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool

	// Primed is false until the first poll. Keys already held on that
	// frame do not count as just pressed.
	Primed bool
}

var Input = donburi.NewComponentType[InputData]()
