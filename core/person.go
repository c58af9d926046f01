package core

import (
	"fmt"

	"github.com/automoto/nurture/shared/gamemath"
)

// Person is what Level needs from the player and the children to resolve
// collisions and apply interactable effects.
type Person interface {
	ID() ID
	Rect() gamemath.Rect
	Body() *Body
	Solid() bool
	Solidify()
	Unsolidify()
	OnJumpPad()
}

type WalkDirection int

const (
	Still WalkDirection = iota
	Left
	Right
)

func (d WalkDirection) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "still"
}

func ParseWalkDirection(s string) (WalkDirection, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "still", "":
		return Still, nil
	}
	return Still, fmt.Errorf("unknown walk direction %q", s)
}

type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

type AnimState int

const (
	AnimIdle AnimState = iota
	AnimWalk
	AnimJump
	AnimFall
)

func (a AnimState) String() string {
	return [...]string{"idle", "walk", "jump", "fall"}[a]
}

func animStateFor(v gamemath.Vec) AnimState {
	switch {
	case v.Y < 0:
		return AnimJump
	case v.Y > 0:
		return AnimFall
	case v.X != 0:
		return AnimWalk
	}
	return AnimIdle
}

// person holds the kinematics both persons share. Gravity and
// speedDecrease are per second.
type person struct {
	id            ID
	body          Body
	solid         bool
	movedX        bool
	gravity       float64
	speedDecrease float64
	facing        Facing
	anim          AnimState
}

func (p *person) ID() ID                     { return p.id }
func (p *person) Rect() gamemath.Rect        { return p.body.Mask }
func (p *person) Body() *Body                { return &p.body }
func (p *person) Velocity() gamemath.Vec     { return p.body.Velocity }
func (p *person) Solid() bool                { return p.solid }
func (p *person) Solidify()                  { p.solid = true }
func (p *person) Unsolidify()                { p.solid = false }
func (p *person) Facing() Facing             { return p.facing }
func (p *person) AnimState() AnimState       { return p.anim }
func (p *person) Position() gamemath.Vec     { return p.body.Mask.Pos }
func (p *person) setPosition(v gamemath.Vec) { p.body.Mask.Pos = v }

// OnFloor is true while vertical velocity lies within two ticks' worth of
// gravity. It is not a ground contact test.
func (p *person) OnFloor(dt float64) bool {
	vy := p.body.Velocity.Y
	return vy >= 0 && vy <= 2*p.gravity*dt
}

func (p *person) applyGravity(dt float64) {
	p.body.AddVelocity(gamemath.Vec{Y: p.gravity * dt})
}

// decay slows horizontal movement when the person had no horizontal
// drive this tick and is on the floor, then clears the moved flag.
func (p *person) decay(dt float64) {
	if !p.movedX && p.OnFloor(dt) {
		p.body.DecreaseVelocity(gamemath.Vec{X: p.speedDecrease * dt})
	}
	p.movedX = false
}
