package core

import (
	"fmt"

	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/shared/gamemath"
)

type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpen
	DoorOpening
	DoorClosing
)

var doorStateNames = [...]string{"Closed", "Open", "Opening", "Closing"}

func (s DoorState) String() string { return doorStateNames[s] }

func ParseDoorState(s string) (DoorState, error) {
	for i, name := range doorStateNames {
		if s == name {
			return DoorState(i), nil
		}
	}
	return DoorClosed, fmt.Errorf("%w: door state %q", ErrInvalidState, s)
}

// Door is toggled remotely by switches. It blocks movement while Closed
// or Closing.
type Door struct {
	interactable
	state DoorState
}

func NewDoor(id ID, mask gamemath.Rect, color string, state DoorState) *Door {
	return &Door{
		interactable: newInteractable(id, mask, color, config.Animation.DoorIdle),
		state:        state,
	}
}

func (d *Door) State() DoorState { return d.state }

func (d *Door) Solid() bool {
	return d.state == DoorClosed || d.state == DoorClosing
}

// Trigger toggles the door. Doors are never touched by persons directly;
// the person argument is unused.
func (d *Door) Trigger(Person) {
	d.Toggle()
}

// Toggle starts the transition to the opposite steady state. A door that
// is already moving ignores it.
func (d *Door) Toggle() {
	switch d.state {
	case DoorOpen:
		d.state = DoorClosing
	case DoorClosed:
		d.state = DoorOpening
	default:
		return
	}
	d.anim = newAnimation(config.Animation.DoorTransition)
}

func (d *Door) Update() {
	d.anim.Update()
	if d.anim.Played() < 1 {
		return
	}
	switch d.state {
	case DoorOpening:
		d.state = DoorOpen
	case DoorClosing:
		d.state = DoorClosed
	default:
		return
	}
	d.anim = newAnimation(config.Animation.DoorIdle)
}
