package replay

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/automoto/nurture/core"
	"github.com/automoto/nurture/shared/leveldata"
)

const dt = 1.0 / 60

func inst(typ string, x, y, w, h float64) leveldata.Instance {
	return leveldata.Instance{
		Type:     typ,
		Position: &leveldata.Point{X: x, Y: y},
		Size:     &leveldata.Size{W: w, H: h},
	}
}

// corridor is a floor with Larry on the left and a goal, holding the
// player, on the right.
func corridor(t *testing.T) *core.Level {
	t.Helper()
	l, err := core.NewLevel(&leveldata.Description{
		Name: "corridor",
		Instances: []leveldata.Instance{
			inst(leveldata.TypeWall, 0, 200, 600, 32),
			inst(leveldata.TypeWall, 520, 0, 32, 200),
			inst(leveldata.TypePlayer, 450, 136, 32, 64),
			inst(leveldata.TypeLarryChild, 100, 168, 24, 32),
			inst(leveldata.TypeGoal, 300, 100, 200, 100),
		},
	})
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	return l
}

func mustParse(t *testing.T, doc string) *Script {
	t.Helper()
	s, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return s
}

func TestParse(t *testing.T) {
	s := mustParse(t, `
level: corridor
events:
  - {tick: 30, release: [right]}
  - {tick: 0, hold: [right, jump]}
  - {tick: 5, command: {child: larry, walk: right}}
`)
	if s.MaxTicks != DefaultMaxTicks {
		t.Errorf("MaxTicks = %d, want default", s.MaxTicks)
	}
	var ticks []int
	for _, e := range s.Events {
		ticks = append(ticks, e.Tick)
	}
	if len(ticks) != 3 || ticks[0] != 0 || ticks[1] != 5 || ticks[2] != 30 {
		t.Errorf("events not sorted: %v", ticks)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"no level", `events: []`, "no level"},
		{"bad key", "level: a\nevents: [{tick: 0, hold: [up]}]", "unknown key"},
		{"bad child", "level: a\nevents: [{tick: 0, command: {child: gerald, walk: left}}]", "unknown child"},
		{"still command", "level: a\nevents: [{tick: 0, command: {child: bloat, walk: still}}]", "left or right"},
		{"negative tick", "level: a\nevents: [{tick: -1}]", "negative tick"},
		{"not yaml", "level: [", "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestRunSavesEveryone(t *testing.T) {
	s := mustParse(t, `
level: corridor
max_ticks: 600
events:
  - {tick: 0, command: {child: larry, walk: right}}
  - {tick: 5, command: {child: larry, walk: left}}
  - {tick: 240, next_level: true}
`)
	out := Run(corridor(t), s, dt)

	if !out.Finished {
		t.Fatalf("level not finished after %d ticks", out.Ticks)
	}
	if out.Ticks != 241 {
		t.Errorf("Ticks = %d, want 241", out.Ticks)
	}
	if out.Accepted != 1 || out.Rejected != 1 {
		t.Errorf("accepted = %d rejected = %d", out.Accepted, out.Rejected)
	}
	if !out.Result.PlayerSaved || len(out.Result.Children) != 1 || out.Result.Children[0] != core.Larry {
		t.Fatalf("result = %+v", out.Result)
	}
	if got := out.Score.Total(); got != 50+100-1 {
		t.Errorf("score = %d, want 149", got)
	}
}

func TestRunStopsAtBudget(t *testing.T) {
	s := mustParse(t, "level: corridor\nmax_ticks: 90\n")
	out := Run(corridor(t), s, dt)
	if out.Finished || out.Ticks != 90 {
		t.Fatalf("finished = %v ticks = %d", out.Finished, out.Ticks)
	}
}

func TestHeldKeysPersistUntilReleased(t *testing.T) {
	s := mustParse(t, `
level: corridor
events:
  - {tick: 0, hold: [left]}
  - {tick: 20, release: [left]}
`)
	l := corridor(t)
	r := NewRunner(l, s, dt)
	start := l.Player().Position().X

	for range 20 {
		r.Step()
	}
	if l.Player().Velocity().X >= 0 || l.Player().Position().X >= start {
		t.Fatalf("player did not move left: vx = %v", l.Player().Velocity().X)
	}

	for range 60 {
		r.Step()
	}
	if vx := l.Player().Velocity().X; vx != 0 {
		t.Fatalf("player still moving after release: vx = %v", vx)
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	s := mustParse(t, "level: corridor\nmax_ticks: 100000\n")
	loop := NewLoop(NewRunner(corridor(t), s, dt), 1000)
	ticks := 0
	loop.OnTick = func(*Runner) { ticks++ }

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := loop.Run(ctx); err != context.DeadlineExceeded {
		t.Fatalf("Run = %v, want deadline exceeded", err)
	}
	if ticks == 0 {
		t.Fatal("loop never ticked")
	}
}

func TestLoopEndsWithScript(t *testing.T) {
	s := mustParse(t, "level: corridor\nmax_ticks: 5\n")
	loop := NewLoop(NewRunner(corridor(t), s, dt), 1000)
	if err := loop.Run(context.Background()); err != nil {
		t.Fatalf("Run = %v", err)
	}
}
