package core

import (
	"fmt"
	"slices"

	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/shared/gamemath"
)

type SwitchState int

const (
	SwitchOff SwitchState = iota
	SwitchOn
	SwitchTurningOn
	SwitchTurningOff
)

var switchStateNames = [...]string{"Off", "On", "TurningOn", "TurningOff"}

func (s SwitchState) String() string { return switchStateNames[s] }

func ParseSwitchState(s string) (SwitchState, error) {
	for i, name := range switchStateNames {
		if s == name {
			return SwitchState(i), nil
		}
	}
	return SwitchOff, fmt.Errorf("%w: switch state %q", ErrInvalidState, s)
}

// Switch flips between On and Off when a person steps on it. Each time a
// flip completes, its target ids become pending until the level has
// applied them.
type Switch struct {
	interactable
	state   SwitchState
	targets []ID
	pending []ID
}

func NewSwitch(id ID, mask gamemath.Rect, color string, state SwitchState, targets []ID) *Switch {
	return &Switch{
		interactable: newInteractable(id, mask, color, config.Animation.SwitchIdle),
		state:        state,
		targets:      slices.Clone(targets),
	}
}

func (s *Switch) State() SwitchState { return s.state }

func (s *Switch) Trigger(Person) {
	switch s.state {
	case SwitchOn:
		s.state = SwitchTurningOff
	case SwitchOff:
		s.state = SwitchTurningOn
	default:
		return
	}
	s.anim = newAnimation(config.Animation.SwitchTransition)
}

func (s *Switch) Update() {
	s.anim.Update()
	if s.anim.Played() < 1 {
		return
	}
	switch s.state {
	case SwitchTurningOn:
		s.state = SwitchOn
	case SwitchTurningOff:
		s.state = SwitchOff
	default:
		return
	}
	s.pending = append(s.pending, s.targets...)
	s.anim = newAnimation(config.Animation.SwitchIdle)
}

// Pending returns the ids emitted by completed flips since the last
// ClearPending.
func (s *Switch) Pending() []ID { return s.pending }

func (s *Switch) ClearPending() { s.pending = nil }
