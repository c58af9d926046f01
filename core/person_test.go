package core

import (
	"math"
	"testing"

	"github.com/automoto/nurture/config"
)

func TestPlayerJumpIsEdgeTriggered(t *testing.T) {
	p := NewPlayer(rect(0, 0, 32, 64))
	jump := Input{Held: Keys(KeyJump)}

	p.HandleInput(jump, tick)
	if p.Velocity().Y != -config.Player.JumpSpeed || !p.IsJumping() {
		t.Fatalf("vy = %v jumping = %v", p.Velocity().Y, p.IsJumping())
	}

	// Holding the key after landing does not jump again.
	p.body.SetVelocityY(0)
	p.Land()
	p.HandleInput(jump, tick)
	if p.Velocity().Y != 0 {
		t.Fatalf("jumped again without releasing: vy = %v", p.Velocity().Y)
	}

	p.HandleInput(Input{Released: Keys(KeyJump)}, tick)
	p.HandleInput(jump, tick)
	if p.Velocity().Y >= 0 {
		t.Fatalf("expected a second jump after release, vy = %v", p.Velocity().Y)
	}
}

func TestPlayerCannotJumpInAir(t *testing.T) {
	p := NewPlayer(rect(0, 0, 32, 64))
	p.body.SetVelocityY(200)
	p.HandleInput(Input{Held: Keys(KeyJump)}, tick)
	if p.IsJumping() || p.Velocity().Y != 200 {
		t.Fatalf("jumped while falling: vy = %v", p.Velocity().Y)
	}
}

func TestPlayerJumpRelease(t *testing.T) {
	tests := []struct {
		name string
		vy   float64
		want float64
	}{
		{"early release cuts the jump", -325, -325 + config.Player.JumpKillVelocity},
		{"late release never reverses", -100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(rect(0, 0, 32, 64))
			p.HandleInput(Input{Held: Keys(KeyJump)}, tick)
			p.body.SetVelocityY(tt.vy)
			p.HandleInput(Input{Released: Keys(KeyJump)}, tick)
			if p.Velocity().Y != tt.want {
				t.Fatalf("vy = %v, want %v", p.Velocity().Y, tt.want)
			}
		})
	}
}

func TestPlayerHorizontalInputOncePerTick(t *testing.T) {
	p := NewPlayer(rect(0, 0, 32, 64))
	p.HandleInput(Input{Held: Keys(KeyLeft, KeyRight)}, tick)
	want := -config.Player.SpeedIncrease * tick
	if math.Abs(p.Velocity().X-want) > 1e-9 {
		t.Fatalf("vx = %v, want %v", p.Velocity().X, want)
	}
}

func TestPlayerDecaysOnlyWithoutInput(t *testing.T) {
	p := NewPlayer(rect(0, 0, 32, 64))
	p.body.SetVelocityX(100)

	p.HandleInput(Input{Held: Keys(KeyRight)}, tick)
	p.Update(tick)
	driven := p.Velocity().X

	p.Update(tick)
	if p.Velocity().X >= driven {
		t.Fatalf("vx did not decay without input: %v -> %v", driven, p.Velocity().X)
	}
	if p.Facing() != FacingRight || p.WalkDirection() != Right {
		t.Fatalf("facing = %v walk = %v", p.Facing(), p.WalkDirection())
	}
}

func TestOnFloorWindow(t *testing.T) {
	p := NewPlayer(rect(0, 0, 32, 64))
	inc := config.Player.Gravity * tick

	tests := []struct {
		vy   float64
		want bool
	}{
		{0, true},
		{inc, true},
		{2 * inc, true},
		{2*inc + 0.01, false},
		{-1, false},
	}
	for _, tt := range tests {
		p.body.SetVelocityY(tt.vy)
		if got := p.OnFloor(tick); got != tt.want {
			t.Errorf("OnFloor(vy=%v) = %v, want %v", tt.vy, got, tt.want)
		}
	}
}

func TestComboStrength(t *testing.T) {
	var c Combo
	base, inc := config.Player.JumpSpeed, config.Combo.StrengthIncrement

	if got := c.Jump(Right); got != base {
		t.Fatalf("first jump = %v, want %v", got, base)
	}
	c.Land()
	c.Tick(0.1)
	if got := c.Jump(Right); got != base+inc {
		t.Fatalf("second jump = %v, want %v", got, base+inc)
	}
	c.Land()
	c.Tick(0.1)
	if got := c.Jump(Right); got != base+2*inc || !c.Final() {
		t.Fatalf("third jump = %v final = %v", got, c.Final())
	}
	c.Land()
	if c.Final() {
		t.Fatal("landing must clear the final flag")
	}
	c.Tick(0.1)
	if got := c.Jump(Right); got != base+2*inc || c.Count() != config.Combo.MaxCount {
		t.Fatalf("capped jump = %v count = %d", got, c.Count())
	}
}

func TestComboResets(t *testing.T) {
	tests := []struct {
		name string
		wait float64
		dir  WalkDirection
	}{
		{"direction change", 0.1, Left},
		{"still", 0.1, Still},
		{"window expired", config.Combo.Window + 0.1, Right},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Combo
			c.Jump(Right)
			c.Land()
			c.Tick(0.1)
			c.Jump(Right)
			c.Land()
			c.Tick(tt.wait)
			if got := c.Jump(tt.dir); got != config.Player.JumpSpeed || c.Count() != 0 {
				t.Fatalf("jump = %v count = %d, want reset", got, c.Count())
			}
		})
	}
}

func TestComboStandingDoesNotExtendWindow(t *testing.T) {
	var c Combo
	c.Jump(Right)
	for range 60 {
		c.Land()
		c.Tick(tick)
	}
	if got := c.Jump(Right); got != config.Player.JumpSpeed {
		t.Fatalf("jump after standing a second = %v, want base", got)
	}
}

func TestComboSpin(t *testing.T) {
	var c Combo
	for range config.Combo.MaxCount {
		c.Jump(Right)
		c.Land()
		c.Tick(0.05)
	}
	c.Jump(Right)
	if !c.Final() {
		t.Fatal("expected final jump")
	}

	c.Tick(config.Combo.SpinDuration / 2)
	if math.Abs(c.Angle()-math.Pi) > 1e-3 {
		t.Fatalf("angle = %v, want ~pi halfway through the spin", c.Angle())
	}

	c.Land()
	if c.Angle() != 0 {
		t.Fatalf("angle = %v after landing", c.Angle())
	}
}

func TestChildWalkCommand(t *testing.T) {
	c := NewChild(Thing, rect(0, 0, 24, 32))
	if c.TryWalk(Still) {
		t.Fatal("Still is not a walk command")
	}
	if !c.TryWalk(Left) {
		t.Fatal("idle child refused to walk")
	}
	if c.TryWalk(Right) {
		t.Fatal("walking child accepted a second command")
	}

	c.Update(tick)
	if c.Velocity().X >= 0 || c.Facing() != FacingLeft {
		t.Fatalf("vx = %v facing = %v", c.Velocity().X, c.Facing())
	}

	c.Solidify()
	vx := c.Velocity().X
	c.body.SetVelocityY(0)
	c.Update(tick)
	if c.Velocity().X <= vx {
		t.Fatalf("solid child kept accelerating: %v -> %v", vx, c.Velocity().X)
	}
}

func TestChildTypes(t *testing.T) {
	for _, ct := range ChildTypes {
		got, err := ParseChildType(ct.Short())
		if err != nil || got != ct {
			t.Errorf("ParseChildType(%q) = %v, %v", ct.Short(), got, err)
		}
	}
	if Thing.Name() != "The Thing" {
		t.Errorf("Thing.Name() = %q", Thing.Name())
	}
	if _, err := ParseChildType("gerald"); err == nil {
		t.Error("expected error for unknown child type")
	}
}
