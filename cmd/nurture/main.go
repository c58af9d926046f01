// nurture validates levels and replays scripted runs without a window.
//
// Usage:
//
//	nurture levels [--watch]          - Build every level and report errors
//	nurture sim <script.yaml>         - Replay a script and record the run
//	nurture history [level]           - Show recorded runs and best scores
//
// Global flags:
//
//	--config <path>     - YAML config overlay
//	--levels <dir>      - Level directory (default: embedded levels)
//	--db <path>         - Run history database (default: ~/.nurture/runs.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
