package core

import (
	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/shared/gamemath"
)

// oneWayTolerance is how far below a one-way's top edge a body's bottom
// may already be and still be caught by it.
const oneWayTolerance = 4

// OneWay is a platform that can be passed from below and stood on from
// above.
type OneWay struct {
	interactable
}

func NewOneWay(mask gamemath.Rect, color string) *OneWay {
	return &OneWay{
		interactable: newInteractable(NewID(), mask, color, config.Animation.OneWayIdle),
	}
}

func (o *OneWay) Trigger(Person) {}

func (o *OneWay) Update() {
	o.anim.Update()
}

// Blocks reports whether a body moving from prev to candidate with
// vertical velocity vy is stopped by the platform.
func (o *OneWay) Blocks(prev, candidate gamemath.Rect, vy float64) bool {
	if vy <= 0 {
		return false
	}
	return prev.Bottom() < o.mask.Top()+oneWayTolerance && candidate.IntersectsRound(o.mask)
}
