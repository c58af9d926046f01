// Package animations holds the tick-driven frame clock shared by the
// simulation (state machines wait on Looped) and the host renderer.
package animations

type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	SpeedInTps       float32 // how many ticks before next frame
	frameCounter     float32
	frame            int
	played           int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
}

func (a *Animation) Update() {
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			a.played++
			if a.FreezeOnComplete {
				a.frame = a.Last
			} else {
				a.frame = a.First
			}
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Played returns how many full cycles completed since the last Restart.
func (a *Animation) Played() int {
	return a.played
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.played = 0
	a.Looped = false
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}

// TicksPerCycle returns how many Update calls one full cycle takes.
func (a *Animation) TicksPerCycle() int {
	if a.Step <= 0 {
		return 0
	}
	advances := (a.Last-a.First)/a.Step + 1
	return advances * (int(a.SpeedInTps) + 1)
}
