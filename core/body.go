package core

import (
	"math"

	"github.com/automoto/nurture/shared/gamemath"
)

// Body is the kinematic state shared by the player and the children.
// Every velocity mutation goes through a method that clamps to MaxVelocity.
type Body struct {
	Mask        gamemath.Rect
	Velocity    gamemath.Vec
	MaxVelocity gamemath.Vec
}

func NewBody(mask gamemath.Rect, maxVelocity gamemath.Vec) Body {
	return Body{
		Mask:        mask,
		MaxVelocity: gamemath.Vec{X: math.Abs(maxVelocity.X), Y: math.Abs(maxVelocity.Y)},
	}
}

func (b *Body) AddVelocity(d gamemath.Vec) {
	b.SetVelocity(b.Velocity.Add(d))
}

// DecreaseVelocity moves each component toward zero by the matching
// component of d without crossing zero.
func (b *Body) DecreaseVelocity(d gamemath.Vec) {
	b.SetVelocity(gamemath.Vec{
		X: gamemath.ApplyFriction(b.Velocity.X, math.Abs(d.X)),
		Y: gamemath.ApplyFriction(b.Velocity.Y, math.Abs(d.Y)),
	})
}

func (b *Body) SetVelocity(v gamemath.Vec) {
	b.Velocity = gamemath.Vec{
		X: gamemath.ClampSpeed(v.X, b.MaxVelocity.X),
		Y: gamemath.ClampSpeed(v.Y, b.MaxVelocity.Y),
	}
}

func (b *Body) SetVelocityX(x float64) {
	b.SetVelocity(gamemath.Vec{X: x, Y: b.Velocity.Y})
}

func (b *Body) SetVelocityY(y float64) {
	b.SetVelocity(gamemath.Vec{X: b.Velocity.X, Y: y})
}
