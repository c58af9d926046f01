package replay

import (
	"github.com/automoto/nurture/core"
	"github.com/automoto/nurture/score"
	"github.com/charmbracelet/log"
)

// Outcome summarises a replay.
type Outcome struct {
	Ticks    int
	Finished bool
	Result   core.Result
	Accepted int
	Rejected int
	Score    score.Score
}

// Runner steps a level through a script one tick at a time.
type Runner struct {
	level  *core.Level
	script *Script
	dt     float64
	held   core.KeySet
	next   int
	done   bool
	out    Outcome
}

func NewRunner(l *core.Level, s *Script, dt float64) *Runner {
	return &Runner{level: l, script: s, dt: dt}
}

func (r *Runner) Level() *core.Level { return r.level }

// Step applies this tick's events and advances the level once. It returns
// false once the level is finished or the tick budget is spent.
func (r *Runner) Step() bool {
	if r.done {
		return false
	}

	tick := r.level.Ticks()
	var released core.KeySet
	for r.next < len(r.script.Events) && r.script.Events[r.next].Tick <= tick {
		released |= r.apply(r.script.Events[r.next])
		r.next++
	}

	r.level.Update(core.Input{Held: r.held, Released: released}, r.dt)
	r.out.Ticks = r.level.Ticks()

	if r.level.NextLevel() {
		r.out.Finished = true
		r.out.Result = r.level.Result()
		r.out.Score.Add(r.out.Result)
		r.done = true
	} else if r.out.Ticks >= r.script.MaxTicks {
		r.done = true
	}
	return !r.done
}

// apply runs one event and returns the keys it released.
func (r *Runner) apply(e Event) core.KeySet {
	hold, _ := keySet(e.Hold)
	release, _ := keySet(e.Release)
	r.held |= hold
	r.held &^= release

	if e.Command != nil {
		t, dir, err := e.Command.parse()
		switch {
		case err != nil:
			r.out.Rejected++
		case r.level.CommandChild(t, dir):
			r.out.Accepted++
			r.out.Score.Moved(t)
		default:
			r.out.Rejected++
			log.Debug("command rejected", "tick", e.Tick, "child", t, "walk", dir)
		}
	}
	if e.NextLevel {
		r.level.RequestNextLevel()
	}
	return release
}

func (r *Runner) Outcome() Outcome { return r.out }

// Run plays s against l at a fixed step of dt seconds.
func Run(l *core.Level, s *Script, dt float64) Outcome {
	r := NewRunner(l, s, dt)
	for r.Step() {
	}
	return r.Outcome()
}
