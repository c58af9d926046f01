package core

import (
	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/shared/gamemath"
)

type Player struct {
	person
	walkDir   WalkDirection
	isJumping bool
	hasJumped bool
	combo     Combo
}

func NewPlayer(mask gamemath.Rect) *Player {
	return &Player{
		person: person{
			id: NewID(),
			body: NewBody(mask, gamemath.Vec{
				X: config.Player.MaxVelocityX,
				Y: config.Player.MaxVelocityY,
			}),
			gravity:       config.Player.Gravity,
			speedDecrease: config.Player.SpeedDecrease,
		},
	}
}

// HandleInput applies one tick of input. Releases are handled before
// held keys.
func (p *Player) HandleInput(in Input, dt float64) {
	if in.Released.Has(KeyJump) {
		p.hasJumped = false
		if p.isJumping && p.body.Velocity.Y < 0 {
			p.body.AddVelocity(gamemath.Vec{Y: config.Player.JumpKillVelocity})
			if p.body.Velocity.Y > 0 {
				p.body.SetVelocityY(0)
			}
		}
	}

	left, right := in.Held.Has(KeyLeft), in.Held.Has(KeyRight)
	if left && !p.movedX {
		p.movedX = true
		p.body.AddVelocity(gamemath.Vec{X: -config.Player.SpeedIncrease * dt})
	}
	if right && !p.movedX {
		p.movedX = true
		p.body.AddVelocity(gamemath.Vec{X: config.Player.SpeedIncrease * dt})
	}

	if in.Held.Has(KeyJump) && !p.hasJumped && p.OnFloor(dt) {
		dir := Still
		switch {
		case left && !right:
			dir = Left
		case right && !left:
			dir = Right
		}
		p.jump(dir)
	}
}

func (p *Player) jump(dir WalkDirection) {
	if p.isJumping {
		return
	}
	p.hasJumped = true
	p.isJumping = true
	p.body.AddVelocity(gamemath.Vec{Y: -p.combo.Jump(dir)})
}

// Land is called when downward movement was blocked.
func (p *Player) Land() {
	p.StopJumping()
	p.combo.Land()
}

func (p *Player) StopJumping()                 { p.isJumping = false }
func (p *Player) IsJumping() bool              { return p.isJumping }
func (p *Player) Combo() *Combo                { return &p.combo }
func (p *Player) WalkDirection() WalkDirection { return p.walkDir }

// OnJumpPad marks the player as jumping so the jump key cannot fire again
// at the apex of the bounce.
func (p *Player) OnJumpPad() {
	p.isJumping = true
}

// Update runs after movement resolution: animation state, idle
// deceleration, walk direction, gravity and the combo clock.
func (p *Player) Update(dt float64) {
	p.anim = animStateFor(p.body.Velocity)
	p.decay(dt)

	switch vx := p.body.Velocity.X; {
	case vx > 0:
		p.walkDir = Right
		p.facing = FacingRight
	case vx < 0:
		p.walkDir = Left
		p.facing = FacingLeft
	default:
		p.walkDir = Still
	}

	p.applyGravity(dt)
	p.combo.Tick(dt)
}
