package core

import (
	"fmt"

	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/shared/gamemath"
)

type JumpPadState int

const (
	JumpPadActive JumpPadState = iota
	JumpPadInactive
	JumpPadTrigger
)

var jumpPadStateNames = [...]string{"Active", "Inactive", "Trigger"}

func (s JumpPadState) String() string { return jumpPadStateNames[s] }

func ParseJumpPadState(s string) (JumpPadState, error) {
	for i, name := range jumpPadStateNames {
		if s == name {
			return JumpPadState(i), nil
		}
	}
	return JumpPadActive, fmt.Errorf("%w: jump pad state %q", ErrInvalidState, s)
}

// JumpPad launches persons that touch its center band upward.
type JumpPad struct {
	interactable
	state    JumpPadState
	strength float64
}

// NewJumpPad creates a pad. A strength of zero or less uses
// config.JumpPad.Strength.
func NewJumpPad(id ID, mask gamemath.Rect, color string, state JumpPadState, strength float64) *JumpPad {
	if strength <= 0 {
		strength = config.JumpPad.Strength
	}
	return &JumpPad{
		interactable: newInteractable(id, mask, color, config.Animation.JumpPadIdle),
		state:        state,
		strength:     strength,
	}
}

func (j *JumpPad) State() JumpPadState { return j.state }
func (j *JumpPad) Strength() float64   { return j.strength }
func (j *JumpPad) Active() bool        { return j.state != JumpPadInactive }

// CenterBand is the part of the pad that triggers a bounce.
func (j *JumpPad) CenterBand() gamemath.Rect {
	return j.mask.InsetX(config.JumpPad.CenterInset)
}

func (j *JumpPad) Trigger(p Person) {
	if !j.Active() {
		return
	}
	p.Body().SetVelocityY(-j.strength)
	p.OnJumpPad()
	j.state = JumpPadTrigger
	j.anim = newAnimation(config.Animation.JumpPadTrigger)
}

// Toggle switches between Inactive and Active. A pad mid-bounce becomes
// Inactive.
func (j *JumpPad) Toggle() {
	if j.state == JumpPadInactive {
		j.state = JumpPadActive
	} else {
		j.state = JumpPadInactive
	}
	j.anim = newAnimation(config.Animation.JumpPadIdle)
}

func (j *JumpPad) Update() {
	j.anim.Update()
	if j.state == JumpPadTrigger && j.anim.Played() >= 1 {
		j.state = JumpPadActive
		j.anim = newAnimation(config.Animation.JumpPadIdle)
	}
}
