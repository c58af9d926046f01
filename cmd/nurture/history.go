package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/storage"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history [level]",
	Short: "Show recorded runs",
	Long: `List the most recent recorded runs, optionally for one level, along
with the best score.

Examples:
  nurture history
  nurture history test_two --limit 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runHistory(_ *cobra.Command, args []string) error {
	level := ""
	if len(args) == 1 {
		level = args[0]
	}

	store, err := storage.Open(config.Storage.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.RecentRuns(level, flagLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println("Run 'nurture sim <script.yaml>' to record one.")
		return nil
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-16s  %-12s  %6s  %6s  %-8s  %s",
		"Date", "Level", "Ticks", "Score", "Status", "Saved")))
	for _, r := range runs {
		status := okStyle.Render(fmt.Sprintf("%-8s", "done"))
		if !r.Finished {
			status = failStyle.Render(fmt.Sprintf("%-8s", "timeout"))
		}
		fmt.Printf("%-16s  %-12s  %6d  %6d  %s  %s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Level, r.Ticks, r.Score, status, saved(r))
	}

	if level != "" {
		best, err := store.BestScore(level)
		if err == nil {
			fmt.Println()
			fmt.Printf("Best: %d\n", best)
		}
	}
	return nil
}

func saved(r storage.Run) string {
	var names []string
	if r.PlayerSaved {
		names = append(names, config.Player.Name)
	}
	for _, t := range r.Children {
		names = append(names, t.Name())
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
