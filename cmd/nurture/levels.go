package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/automoto/nurture/config"
	"github.com/automoto/nurture/core"
	"github.com/automoto/nurture/shared/leveldata"
)

var flagWatch bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Build every level and report problems",
	Long: `Load every .json and .tmx level, build it, and print one line per
level. With --watch the levels are checked again whenever a file changes.
--watch needs --levels, since embedded levels cannot change.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagWatch, "watch", false, "Re-check levels when files change")
}

func runLevels(_ *cobra.Command, _ []string) error {
	failed := checkLevels()
	if !flagWatch {
		if failed > 0 {
			return fmt.Errorf("%d level(s) failed", failed)
		}
		return nil
	}

	dir := config.Levels.Dir
	if dir == "" {
		return errors.New("--watch needs a level directory (--levels or levels.dir)")
	}

	w, err := leveldata.NewWatcher(dir)
	if err != nil {
		return err
	}
	defer w.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	log.Info("watching levels", "dir", dir)

	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			log.Info("level changed", "path", path)
			checkLevels()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "err", err)
		case <-stop:
			return nil
		}
	}
}

// checkLevels prints a status table and returns how many levels failed.
func checkLevels() int {
	loader := levelLoader()
	names, err := loader.LoadAll()
	if err != nil {
		fmt.Println(failStyle.Render("FAIL") + " " + err.Error())
		return 1
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("%-4s  %-16s  %s", "", "Level", "Contents")))
	failed := 0
	for _, name := range names {
		desc, _ := loader.Get(name)
		l, err := core.NewLevel(desc)
		if err != nil {
			failed++
			fmt.Printf("%s  %s  %v\n", failStyle.Render("FAIL"), nameStyle.Render(name), err)
			continue
		}
		fmt.Printf("%s  %s  %s\n", okStyle.Render(" OK "), nameStyle.Render(name), summary(l))
	}
	return failed
}

func summary(l *core.Level) string {
	return fmt.Sprintf("%dx%d, %d children, %d walls, %d doors, %d switches, %d jump pads",
		int(l.Size.W), int(l.Size.H), len(l.Children()), len(l.Walls()),
		len(l.Doors()), len(l.Switches()), len(l.JumpPads()))
}
