package core

import (
	"slices"

	"github.com/automoto/nurture/shared/gamemath"
)

// Result is who was in the goal when the level was finished.
type Result struct {
	PlayerSaved bool
	Children    []ChildType
}

// Level owns every body and interactable of one loaded level and advances
// them one fixed step per Update call.
type Level struct {
	Name string
	Size gamemath.Size

	player      *Player
	children    []*Child
	walls       []*Wall
	switches    []*Switch
	jumpPads    []*JumpPad
	doors       []*Door
	oneWays     []*OneWay
	solidifiers []*Solidifier
	goal        *Goal
	space       *Space

	ticks     int
	toSave    int
	nextLevel bool
	result    Result
}

// Update advances the level by dt seconds. Phases run in a fixed order:
// switches, jump pads, doors, solidifiers, goal, children, player and
// finally the goal tally. Later phases read what earlier ones changed.
func (l *Level) Update(in Input, dt float64) {
	l.player.HandleInput(in, dt)

	triggered := l.updateSwitches()
	l.updateJumpPads(triggered)
	l.updateDoors(triggered)
	l.updateSolidifiers()
	l.updateGoal()
	for _, c := range l.children {
		l.moveChild(c, dt)
	}
	l.movePlayer(dt)
	for _, o := range l.oneWays {
		o.Update()
	}

	if l.goal != nil {
		l.toSave = l.goal.Registry().Len()
	}
	l.ticks++
}

// persons returns the player followed by every child.
func (l *Level) persons() []Person {
	ps := make([]Person, 0, len(l.children)+1)
	ps = append(ps, l.player)
	for _, c := range l.children {
		ps = append(ps, c)
	}
	return ps
}

// touch latches p onto i while overlapping and releases the latch when
// not.
func touch(i Interactable, p Person, overlapping bool) {
	if overlapping {
		TriggerOnce(i, p)
	} else {
		i.Registry().SetIntersected(p.ID(), false)
	}
}

// updateSwitches handles contact and returns the ids emitted by every
// switch that completed a flip this tick.
func (l *Level) updateSwitches() map[ID]bool {
	triggered := make(map[ID]bool)
	for _, s := range l.switches {
		for _, p := range l.persons() {
			touch(s, p, s.Rect().Intersects(p.Rect()))
		}
		s.Update()
		for _, id := range s.Pending() {
			triggered[id] = true
		}
		s.ClearPending()
	}
	return triggered
}

func (l *Level) updateJumpPads(triggered map[ID]bool) {
	for _, j := range l.jumpPads {
		if triggered[j.ID()] {
			j.Toggle()
		}
		band := j.CenterBand()
		for _, p := range l.persons() {
			// An inactive pad does not latch, so a person already
			// standing on it bounces as soon as it is switched on.
			touch(j, p, j.Active() && band.Intersects(p.Rect()))
		}
		j.Update()
	}
}

func (l *Level) updateDoors(triggered map[ID]bool) {
	for _, d := range l.doors {
		if triggered[d.ID()] {
			d.Toggle()
		}
		d.Update()
	}
}

// updateSolidifiers keeps a person solid while it touches any solidifier
// and unsolidifies it once it touches none.
func (l *Level) updateSolidifiers() {
	for _, p := range l.persons() {
		inside := false
		for _, s := range l.solidifiers {
			overlapping := s.Rect().Intersects(p.Rect())
			inside = inside || overlapping
			touch(s, p, overlapping)
		}
		if !inside {
			p.Unsolidify()
		}
	}
	for _, s := range l.solidifiers {
		s.Update()
	}
}

func (l *Level) updateGoal() {
	if l.goal == nil {
		return
	}
	for _, p := range l.persons() {
		touch(l.goal, p, l.goal.Rect().Intersects(p.Rect()))
	}
	l.goal.Update()
}

// blocked reports whether candidate collides with level geometry for a
// body that was at prev with vertical velocity vy.
func (l *Level) blocked(prev, candidate gamemath.Rect, vy float64) bool {
	for _, w := range l.space.Walls(candidate) {
		if candidate.IntersectsRound(w.Rect()) {
			return true
		}
	}
	if l.inSolidDoor(candidate) {
		return true
	}
	for _, o := range l.space.OneWays(candidate) {
		if o.Blocks(prev, candidate, vy) {
			return true
		}
	}
	return false
}

func (l *Level) inSolidDoor(r gamemath.Rect) bool {
	for _, d := range l.space.Doors(r) {
		if d.Solid() && r.IntersectsRound(d.Rect()) {
			return true
		}
	}
	return false
}

// moveChild resolves one child's movement. Children are blocked by solid
// children other than themselves and by a solid player.
func (l *Level) moveChild(c *Child, dt float64) {
	prev := c.Rect()
	vel := c.body.Velocity
	pos := ResolveMove(prev, vel.Scale(dt), func(r gamemath.Rect) bool {
		if l.blocked(prev, r, vel.Y) {
			return false
		}
		for _, other := range l.children {
			if other != c && other.Solid() && r.IntersectsRound(other.Rect()) {
				return false
			}
		}
		return !(l.player.Solid() && r.IntersectsRound(l.player.Rect()))
	})

	if vel.X != 0 && pos.X == prev.Pos.X {
		c.body.SetVelocityX(0)
		c.StopWalking()
	}
	if vel.Y != 0 && pos.Y == prev.Pos.Y {
		c.body.SetVelocityY(0)
		if vel.Y > 0 {
			c.Land()
		}
	}
	c.setPosition(pos)

	// A door closing on a child pushes it 2 widths against its walk
	// direction, with Still counting as Left. A child whose horizontal move
	// was blocked by the door has just been stopped, so it goes right.
	if l.inSolidDoor(c.Rect()) {
		pos.X += 2 * c.Rect().Size().W * -c.walkDirectionMult()
		c.setPosition(pos)
	}

	c.Update(dt)
}

// movePlayer resolves the player's movement. Only solid children block
// the player.
func (l *Level) movePlayer(dt float64) {
	p := l.player
	prev := p.Rect()
	vel := p.body.Velocity
	pos := ResolveMove(prev, vel.Scale(dt), func(r gamemath.Rect) bool {
		if l.blocked(prev, r, vel.Y) {
			return false
		}
		for _, c := range l.children {
			if c.Solid() && r.IntersectsRound(c.Rect()) {
				return false
			}
		}
		return true
	})

	if vel.X != 0 && pos.X == prev.Pos.X {
		p.body.SetVelocityX(0)
	}
	if vel.Y != 0 && pos.Y == prev.Pos.Y {
		p.body.SetVelocityY(0)
		if vel.Y > 0 {
			p.Land()
		} else {
			p.StopJumping()
		}
	}
	p.setPosition(pos)

	if l.inSolidDoor(p.Rect()) {
		pos.X -= 2 * p.Rect().Size().W
		p.setPosition(pos)
	}

	p.Update(dt)
}

// CommandChild tells the first child of type t to start walking in dir.
// It reports whether the child accepted, which it only does while Still.
func (l *Level) CommandChild(t ChildType, dir WalkDirection) bool {
	c := l.Child(t)
	if c == nil {
		return false
	}
	return c.TryWalk(dir)
}

// RequestNextLevel ends the level and records who is in the goal now.
// Later calls keep the first result.
func (l *Level) RequestNextLevel() {
	if l.nextLevel {
		return
	}
	l.nextLevel = true
	l.result = Result{
		PlayerSaved: l.PlayerInGoal(),
		Children:    l.ChildrenInGoal(),
	}
}

func (l *Level) NextLevel() bool { return l.nextLevel }

// Result is only meaningful once NextLevel reports true.
func (l *Level) Result() Result {
	return Result{
		PlayerSaved: l.result.PlayerSaved,
		Children:    slices.Clone(l.result.Children),
	}
}

func (l *Level) PlayerInGoal() bool {
	return l.goal != nil && l.goal.Registry().IsIntersected(l.player.ID())
}

// ChildrenInGoal returns the types of the children in the goal, in the
// order they entered it.
func (l *Level) ChildrenInGoal() []ChildType {
	if l.goal == nil {
		return nil
	}
	var types []ChildType
	for _, id := range l.goal.Registry().Intersected() {
		for _, c := range l.children {
			if c.ID() == id {
				types = append(types, c.Type)
			}
		}
	}
	return types
}

// ToSave is how many persons were in the goal at the end of the last tick.
func (l *Level) ToSave() int { return l.toSave }

func (l *Level) Ticks() int { return l.ticks }

// Child returns the first child of type t, or nil.
func (l *Level) Child(t ChildType) *Child {
	for _, c := range l.children {
		if c.Type == t {
			return c
		}
	}
	return nil
}

func (l *Level) Player() *Player            { return l.player }
func (l *Level) Children() []*Child         { return l.children }
func (l *Level) Walls() []*Wall             { return l.walls }
func (l *Level) Switches() []*Switch        { return l.switches }
func (l *Level) JumpPads() []*JumpPad       { return l.jumpPads }
func (l *Level) Doors() []*Door             { return l.doors }
func (l *Level) OneWays() []*OneWay         { return l.oneWays }
func (l *Level) Solidifiers() []*Solidifier { return l.solidifiers }

// Goal returns the level's goal, or nil when it has none.
func (l *Level) Goal() *Goal { return l.goal }
