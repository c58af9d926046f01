package core

import (
	"github.com/automoto/nurture/assets/animations"
	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/shared/gamemath"
)

// Interactable is a level object that reacts to persons touching it.
// Level decides what counts as touching; Trigger applies the effect.
type Interactable interface {
	ID() ID
	Rect() gamemath.Rect
	Registry() *Registry
	Trigger(p Person)
	Update()
}

// TriggerOnce fires i's effect on p unless p is already latched onto i.
// It reports whether the effect fired. The latch is released by the caller
// with Registry().SetIntersected(p.ID(), false) once contact ends.
func TriggerOnce(i Interactable, p Person) bool {
	r := i.Registry()
	if r.IsIntersected(p.ID()) {
		return false
	}
	r.SetIntersected(p.ID(), true)
	i.Trigger(p)
	return true
}

// interactable holds what every interactable kind shares.
type interactable struct {
	id       ID
	mask     gamemath.Rect
	color    string
	registry Registry
	anim     *animations.Animation
}

func newInteractable(id ID, mask gamemath.Rect, color string, spec config.AnimSpec) interactable {
	return interactable{
		id:    id,
		mask:  mask,
		color: color,
		anim:  newAnimation(spec),
	}
}

func (i *interactable) ID() ID              { return i.id }
func (i *interactable) Rect() gamemath.Rect { return i.mask }
func (i *interactable) Registry() *Registry { return &i.registry }

// Color is the authored color variant, empty when none was given.
func (i *interactable) Color() string { return i.color }

// Frame is the current animation frame, for the renderer.
func (i *interactable) Frame() int { return i.anim.Frame() }

func newAnimation(spec config.AnimSpec) *animations.Animation {
	last := spec.Frames - 1
	if last < 0 {
		last = 0
	}
	return animations.NewAnimation(0, last, 1, spec.TicksPerFrame)
}

// Wall is static solid geometry.
type Wall struct {
	Mask gamemath.Rect
}

func (w *Wall) Rect() gamemath.Rect { return w.Mask }
