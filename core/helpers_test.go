package core

import (
	"testing"

	"github.com/automoto/nurture/shared/gamemath"
	"github.com/automoto/nurture/shared/leveldata"
)

const tick = 1.0 / 60

func rect(x, y, w, h float64) gamemath.Rect {
	return gamemath.NewRect(gamemath.Vec{X: x, Y: y}, gamemath.Size{W: w, H: h}, gamemath.TopLeft)
}

func ptr[T any](v T) *T { return &v }

func inst(typ string, x, y, w, h float64) leveldata.Instance {
	return leveldata.Instance{
		Type:     typ,
		Position: &leveldata.Point{X: x, Y: y},
		Size:     &leveldata.Size{W: w, H: h},
	}
}

func withAdd(in leveldata.Instance, add leveldata.Additional) leveldata.Instance {
	in.Additional = &add
	return in
}

func buildLevel(t *testing.T, instances ...leveldata.Instance) *Level {
	t.Helper()
	l, err := NewLevel(&leveldata.Description{Name: t.Name(), Instances: instances})
	if err != nil {
		t.Fatalf("NewLevel: %v", err)
	}
	return l
}

// runTicks advances l n times with no input.
func runTicks(l *Level, n int) {
	for range n {
		l.Update(Input{}, tick)
	}
}
