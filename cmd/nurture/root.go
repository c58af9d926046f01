package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/automoto/nurture/assets"
	"github.com/automoto/nurture/config"
)

var (
	flagConfig   string
	flagLevels   string
	flagDBPath   string
	flagLogLevel string
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Underline(true)
	nameStyle   = lipgloss.NewStyle().Width(16)
)

var rootCmd = &cobra.Command{
	Use:   "nurture",
	Short: "Headless tools for Nihilistic Nurture Navigation",
	Long: `nurture checks level files and replays scripted runs of the
simulation without opening a window.

Examples:
  nurture levels
  nurture levels --levels ./my-levels --watch
  nurture sim assets/scripts/test_one.yaml
  nurture history test_one`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config overlay")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level directory (empty = embedded levels)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(historyCmd)
}

// setup loads config and installs the logger. Flags override config.
func setup() error {
	path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	levelName := config.Debug.LogLevel
	if flagLogLevel != "" {
		levelName = flagLogLevel
	}
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", levelName, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "nurture",
		Level:           level,
	})
	log.SetDefault(logger)

	if path != "" {
		log.Debug("config loaded", "path", path)
	}
	if flagLevels != "" {
		config.Levels.Dir = flagLevels
	}
	if flagDBPath != "" {
		config.Storage.DBPath = flagDBPath
	}
	return nil
}

func levelLoader() *assets.LevelLoader {
	return assets.NewLevelLoader(config.Levels.Dir)
}
