package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/core"
	"github.com/automoto/nurture/replay"
	"github.com/automoto/nurture/storage"
)

var (
	flagRealtime bool
	flagNoRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim <script.yaml>",
	Short: "Replay an input script against a level",
	Long: `Run a level headless, feeding it the key presses and toolbox commands
listed in a YAML script, then print who was saved and the score.

Runs are recorded in the history database unless --no-record is given.

Examples:
  nurture sim assets/scripts/test_one.yaml
  nurture sim run.yaml --realtime --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Step at the configured tick rate instead of as fast as possible")
	simCmd.Flags().BoolVar(&flagNoRecord, "no-record", false, "Do not store the run in the history database")
}

func runSim(_ *cobra.Command, args []string) error {
	script, err := replay.LoadScript(args[0])
	if err != nil {
		return err
	}

	desc, err := levelLoader().Get(script.Level)
	if err != nil {
		return err
	}
	l, err := core.NewLevel(desc)
	if err != nil {
		return err
	}

	tps := max(config.Game.TPS, 1)
	dt := 1.0 / float64(tps)

	var out replay.Outcome
	if flagRealtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		runner := replay.NewRunner(l, script, dt)
		loop := replay.NewLoop(runner, tps)
		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		out = runner.Outcome()
	} else {
		out = replay.Run(l, script, dt)
	}

	printOutcome(script, out)

	if flagNoRecord {
		return nil
	}
	store, err := storage.Open(config.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.RecordRun(storage.Run{
		Level:       script.Level,
		Script:      args[0],
		Ticks:       out.Ticks,
		Finished:    out.Finished,
		PlayerSaved: out.Result.PlayerSaved,
		Children:    out.Result.Children,
		Moves:       out.Score.MoveCount(),
		Score:       out.Score.Total(),
	})
	if err != nil {
		return err
	}
	log.Info("run recorded", "id", run.ID, "level", run.Level)
	return nil
}

func printOutcome(s *replay.Script, out replay.Outcome) {
	status := okStyle.Render("FINISHED")
	if !out.Finished {
		status = failStyle.Render("TIMED OUT")
	}
	fmt.Printf("%s  %s after %d ticks\n", status, s.Level, out.Ticks)
	fmt.Printf("Commands: %d accepted, %d rejected\n", out.Accepted, out.Rejected)
	if !out.Finished {
		return
	}

	fmt.Println(out.Score.Semantic())
	if lines := out.Score.Breakdown(); len(lines) > 0 {
		fmt.Println(headerStyle.Render("Breakdown"))
		fmt.Println("  " + strings.Join(lines, "\n  "))
	}
	fmt.Printf("Score: %d\n", out.Score.Total())
}
