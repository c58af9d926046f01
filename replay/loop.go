package replay

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// Loop steps a Runner on a wall-clock ticker.
type Loop struct {
	runner   *Runner
	tickRate int

	// OnTick, when set, is called after every step.
	OnTick func(*Runner)
}

func NewLoop(runner *Runner, tickRate int) *Loop {
	return &Loop{
		runner:   runner,
		tickRate: max(tickRate, 1),
	}
}

// Run blocks until the script ends or ctx is cancelled.
func (g *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Info("replay loop started", "tps", g.tickRate, "level", g.runner.Level().Name)

	for {
		select {
		case <-ctx.Done():
			log.Info("replay loop stopped", "ticks", g.runner.Level().Ticks())
			return ctx.Err()
		case <-ticker.C:
			more := g.runner.Step()
			if g.OnTick != nil {
				g.OnTick(g.runner)
			}
			if !more {
				return nil
			}
		}
	}
}
