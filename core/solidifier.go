package core

import (
	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/shared/gamemath"
)

// Solidifier makes persons inside it solid, so they block others, and
// stops children from walking on their own.
type Solidifier struct {
	interactable
}

func NewSolidifier(mask gamemath.Rect, color string) *Solidifier {
	return &Solidifier{
		interactable: newInteractable(NewID(), mask, color, config.Animation.SolidifierIdle),
	}
}

func (s *Solidifier) Trigger(p Person) {
	p.Solidify()
}

func (s *Solidifier) Update() {
	s.anim.Update()
}
