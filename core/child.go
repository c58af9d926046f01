package core

import (
	"fmt"
	"strings"

	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/shared/gamemath"
)

type ChildType int

const (
	Larry ChildType = iota
	Thing
	Bloat
)

// ChildTypes lists every child type in toolbox order.
var ChildTypes = []ChildType{Larry, Thing, Bloat}

// Name is the display name.
func (t ChildType) Name() string {
	switch t {
	case Thing:
		return "The Thing"
	case Bloat:
		return "Bloat"
	}
	return "Larry"
}

// Short is the lowercase key used in save files and scripts.
func (t ChildType) Short() string {
	switch t {
	case Thing:
		return "thing"
	case Bloat:
		return "bloat"
	}
	return "larry"
}

func (t ChildType) String() string { return t.Short() }

func ParseChildType(s string) (ChildType, error) {
	for _, t := range ChildTypes {
		if strings.EqualFold(s, t.Short()) {
			return t, nil
		}
	}
	return Larry, fmt.Errorf("unknown child type %q", s)
}

// Child walks in one direction once commanded and keeps walking until it
// is stopped by a wall or lands after a jump pad bounce.
type Child struct {
	person
	Type          ChildType
	walkDir       WalkDirection
	stopOnLanding bool
}

func NewChild(t ChildType, mask gamemath.Rect) *Child {
	return &Child{
		person: person{
			id: NewID(),
			body: NewBody(mask, gamemath.Vec{
				X: config.Child.MaxVelocityX,
				Y: config.Child.MaxVelocityY,
			}),
			gravity:       config.Child.Gravity,
			speedDecrease: config.Child.SpeedDecrease,
		},
		Type: t,
	}
}

// TryWalk starts walking in dir. It only succeeds while the child is Still.
func (c *Child) TryWalk(dir WalkDirection) bool {
	if c.walkDir != Still || dir == Still {
		return false
	}
	c.walkDir = dir
	return true
}

func (c *Child) StopWalking() {
	c.walkDir = Still
}

func (c *Child) WalkDirection() WalkDirection { return c.walkDir }

func (c *Child) OnJumpPad() {
	c.stopOnLanding = true
}

// Land is called when downward movement was blocked.
func (c *Child) Land() {
	if c.stopOnLanding {
		c.stopOnLanding = false
		c.StopWalking()
	}
}

// walkDirectionMult is 1 when walking right and -1 otherwise.
func (c *Child) walkDirectionMult() float64 {
	if c.walkDir == Right {
		return 1
	}
	return -1
}

func (c *Child) Update(dt float64) {
	c.anim = animStateFor(c.body.Velocity)

	if !c.solid {
		switch c.walkDir {
		case Left:
			c.body.AddVelocity(gamemath.Vec{X: -config.Child.SpeedIncrease * dt})
			c.movedX = true
		case Right:
			c.body.AddVelocity(gamemath.Vec{X: config.Child.SpeedIncrease * dt})
			c.movedX = true
		}
	}
	c.decay(dt)

	switch c.walkDir {
	case Left:
		c.facing = FacingLeft
	case Right:
		c.facing = FacingRight
	}

	c.applyGravity(dt)
}
