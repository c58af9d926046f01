package core

import (
	"math"

	"github.com/automoto/nurture/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Combo tracks consecutive same-direction jumps. A jump made within
// config.Combo.Window seconds of landing, in the same direction as the
// previous one, raises the count by one up to config.Combo.MaxCount.
// Reaching the cap marks the jump as final, which only drives the spin.
type Combo struct {
	count        int
	lastDir      WalkDirection
	landed       bool
	sinceLanding float64
	final        bool
	spin         *gween.Tween
	angle        float64
}

func (c *Combo) Count() int { return c.count }

// Final reports whether the current jump is a capped combo jump.
func (c *Combo) Final() bool { return c.final }

// Angle is the cosmetic spin rotation in radians.
func (c *Combo) Angle() float64 { return c.angle }

// Land starts the combo window. Repeated calls while standing keep the
// original landing time.
func (c *Combo) Land() {
	if c.landed {
		return
	}
	c.landed = true
	c.sinceLanding = 0
	c.final = false
	c.spin = nil
	c.angle = 0
}

func (c *Combo) Tick(dt float64) {
	if c.landed {
		c.sinceLanding += dt
		if c.sinceLanding > config.Combo.Window {
			c.count = 0
		}
	}

	if !c.final || c.spin == nil {
		return
	}
	v, done := c.spin.Update(float32(dt))
	c.angle = float64(v)
	if done {
		c.spin.Reset()
	}
}

// Jump registers a jump in dir and returns its strength.
func (c *Combo) Jump(dir WalkDirection) float64 {
	inWindow := c.landed && c.sinceLanding <= config.Combo.Window
	if dir != Still && dir == c.lastDir && inWindow {
		if c.count < config.Combo.MaxCount {
			c.count++
		}
	} else {
		c.count = 0
	}
	c.lastDir = dir
	c.landed = false

	c.final = config.Combo.MaxCount > 0 && c.count >= config.Combo.MaxCount
	if c.final {
		c.spin = gween.New(0, 2*math.Pi, float32(config.Combo.SpinDuration), ease.Linear)
		c.angle = 0
	}

	return config.Player.JumpSpeed + float64(c.count)*config.Combo.StrengthIncrement
}
