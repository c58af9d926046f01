package core

import (
	"slices"
	"testing"

	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/shared/leveldata"
)

// counter is an interactable that only counts how often it fired.
type counter struct {
	interactable
	fired int
}

func (c *counter) Trigger(Person) { c.fired++ }
func (c *counter) Update()        {}

func TestTriggerOnceFiresOncePerEpisode(t *testing.T) {
	c := &counter{interactable: newInteractable(1, rect(0, 0, 10, 10), "", config.Animation.GoalIdle)}
	p := NewPlayer(rect(0, 0, 10, 10))

	// Episode: overlapping for 10 ticks.
	for range 10 {
		touch(c, p, true)
	}
	if c.fired != 1 {
		t.Fatalf("fired %d times in one episode, want 1", c.fired)
	}

	// Contact ends, then two more episodes.
	touch(c, p, false)
	for range 3 {
		touch(c, p, true)
	}
	touch(c, p, false)
	touch(c, p, false)
	for range 5 {
		touch(c, p, true)
	}
	if c.fired != 3 {
		t.Fatalf("fired %d times over three episodes, want 3", c.fired)
	}
}

func TestRegistry(t *testing.T) {
	var r Registry
	r.SetIntersected(5, true)
	r.SetIntersected(3, true)
	r.SetIntersected(5, true)
	if got := r.Intersected(); !slices.Equal(got, []ID{5, 3}) {
		t.Fatalf("Intersected = %v, want [5 3]", got)
	}
	r.SetIntersected(5, false)
	r.SetIntersected(9, false)
	if r.IsIntersected(5) || !r.IsIntersected(3) || r.Len() != 1 {
		t.Fatalf("after release: %v", r.Intersected())
	}
}

func TestDoorSolidity(t *testing.T) {
	tests := []struct {
		state DoorState
		solid bool
	}{
		{DoorClosed, true},
		{DoorClosing, true},
		{DoorOpen, false},
		{DoorOpening, false},
	}
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			d := NewDoor(7, rect(0, 0, 32, 96), "", tt.state)
			if d.Solid() != tt.solid {
				t.Fatalf("Solid() = %v, want %v", d.Solid(), tt.solid)
			}
		})
	}
}

func TestDoorBlocksResolverOnlyWhenSolid(t *testing.T) {
	for _, state := range []string{"Closed", "Closing", "Open", "Opening"} {
		t.Run(state, func(t *testing.T) {
			l := buildLevel(t,
				inst("Player", 0, 0, 32, 64),
				withAdd(inst("DoorInteractable", 100, 0, 32, 64), leveldata.Additional{State: ptr(state), ID: ptr(uint32(7))}),
			)
			door := l.Doors()[0]
			r := rect(90, 0, 32, 64)
			blocked := l.blocked(r, r, 0)
			if blocked != door.Solid() {
				t.Fatalf("blocked = %v, door solid = %v", blocked, door.Solid())
			}
		})
	}
}

func TestDoorTransitions(t *testing.T) {
	d := NewDoor(7, rect(0, 0, 32, 96), "", DoorClosed)
	d.Toggle()
	if d.State() != DoorOpening {
		t.Fatalf("state = %v, want Opening", d.State())
	}

	// Toggling while moving is ignored.
	d.Toggle()
	if d.State() != DoorOpening {
		t.Fatalf("state = %v, want Opening", d.State())
	}

	n := newAnimation(config.Animation.DoorTransition).TicksPerCycle()
	for range n - 1 {
		d.Update()
	}
	if d.State() != DoorOpening {
		t.Fatalf("state = %v before the strip finished", d.State())
	}
	d.Update()
	if d.State() != DoorOpen {
		t.Fatalf("state = %v, want Open", d.State())
	}

	d.Trigger(nil)
	if d.State() != DoorClosing || !d.Solid() {
		t.Fatalf("state = %v, want solid Closing", d.State())
	}
}

func TestSwitchEmitsTargetsOnEachFlip(t *testing.T) {
	s := NewSwitch(1, rect(0, 0, 32, 32), "", SwitchOff, []ID{7, 9})
	p := NewPlayer(rect(0, 0, 10, 10))
	n := newAnimation(config.Animation.SwitchTransition).TicksPerCycle()

	s.Trigger(p)
	if s.State() != SwitchTurningOn {
		t.Fatalf("state = %v, want TurningOn", s.State())
	}
	for range n {
		if len(s.Pending()) != 0 {
			t.Fatal("pending ids before the flip completed")
		}
		s.Update()
	}
	if s.State() != SwitchOn || !slices.Equal(s.Pending(), []ID{7, 9}) {
		t.Fatalf("state = %v pending = %v", s.State(), s.Pending())
	}
	s.ClearPending()

	s.Trigger(p)
	for range n {
		s.Update()
	}
	if s.State() != SwitchOff || !slices.Equal(s.Pending(), []ID{7, 9}) {
		t.Fatalf("turning off: state = %v pending = %v", s.State(), s.Pending())
	}
}

func TestJumpPadBounce(t *testing.T) {
	pad := NewJumpPad(3, rect(100, 200, 64, 16), "", JumpPadActive, 0)
	p := NewPlayer(rect(116, 140, 32, 64))

	if !pad.CenterBand().Intersects(p.Rect()) {
		t.Fatal("player should be within the center band")
	}
	if !TriggerOnce(pad, p) {
		t.Fatal("TriggerOnce did not fire")
	}
	if p.Velocity().Y != -config.JumpPad.Strength {
		t.Fatalf("vy = %v, want %v", p.Velocity().Y, -config.JumpPad.Strength)
	}
	if pad.State() != JumpPadTrigger {
		t.Fatalf("state = %v, want Trigger", pad.State())
	}
	if !p.IsJumping() {
		t.Fatal("a bounced player must count as jumping")
	}

	n := newAnimation(config.Animation.JumpPadTrigger).TicksPerCycle()
	for range n {
		pad.Update()
	}
	if pad.State() != JumpPadActive {
		t.Fatalf("state = %v, want Active after the trigger strip", pad.State())
	}
}

func TestInactiveJumpPadDoesNothing(t *testing.T) {
	pad := NewJumpPad(3, rect(0, 0, 64, 16), "", JumpPadInactive, 450)
	c := NewChild(Larry, rect(16, -20, 24, 32))
	c.TryWalk(Right)

	pad.Trigger(c)
	if c.Velocity().Y != 0 || pad.State() != JumpPadInactive {
		t.Fatalf("inactive pad fired: vy = %v state = %v", c.Velocity().Y, pad.State())
	}

	pad.Toggle()
	pad.Trigger(c)
	if c.Velocity().Y != -450 {
		t.Fatalf("vy = %v, want -450", c.Velocity().Y)
	}
	c.Land()
	if c.WalkDirection() != Still {
		t.Fatal("child should stop walking when it lands after a bounce")
	}
}

func TestGoalOccupancy(t *testing.T) {
	g := NewGoal(rect(0, 0, 64, 64), "")
	p := NewPlayer(rect(0, 0, 10, 10))
	c := NewChild(Bloat, rect(0, 0, 10, 10))

	steps := []struct {
		name   string
		change func()
		want   int
	}{
		{"empty", func() {}, 0},
		{"player enters", func() { touch(g, p, true) }, 1},
		{"child enters", func() { touch(g, c, true) }, 2},
		{"both stay", func() { touch(g, p, true); touch(g, c, true) }, 2},
		{"player leaves", func() { touch(g, p, false) }, 1},
	}
	for _, step := range steps {
		step.change()
		g.Update()
		if g.Occupancy() != step.want {
			t.Fatalf("%s: occupancy = %d, want %d", step.name, g.Occupancy(), step.want)
		}
	}
}

func TestGoalOccupancySaturates(t *testing.T) {
	g := NewGoal(rect(0, 0, 64, 64), "")
	for i := range config.Goal.MaxOccupancy + 3 {
		g.Registry().SetIntersected(ID(i+1), true)
	}
	g.Update()
	if g.Occupancy() != config.Goal.MaxOccupancy {
		t.Fatalf("occupancy = %d, want %d", g.Occupancy(), config.Goal.MaxOccupancy)
	}
}

func TestOneWayBlocksOnlyFromAbove(t *testing.T) {
	o := NewOneWay(rect(0, 100, 100, 10), "")

	tests := []struct {
		name      string
		prev      float64 // top of a 20px tall body
		candidate float64
		vy        float64
		want      bool
	}{
		{"falling onto it", 75, 85, 300, true},
		{"rising through it", 105, 95, -300, false},
		{"falling while already below the top", 95, 97, 100, false},
		{"resting above", 75, 79, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev, cand := rect(10, tt.prev, 20, 20), rect(10, tt.candidate, 20, 20)
			if got := o.Blocks(prev, cand, tt.vy); got != tt.want {
				t.Fatalf("Blocks = %v, want %v", got, tt.want)
			}
		})
	}
}
