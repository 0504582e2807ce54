// noisefetch draws system info over an animated fractal-noise field in the
// terminal.
//
// Usage:
//
//	noisefetch               - Run the animation (press q to quit)
//	noisefetch ramps         - List the named glyph ramps
//	noisefetch serve         - Serve the animation over SSH
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.noisefetch/config.yaml, ./configs/noisefetch.yaml)
//	--log-file <path>   - Write logs to this file (the animation owns the terminal)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "noisefetch",
	Short: "System info over an animated noise field",
	Long: `noisefetch shows a logo and info lines in a box centred over a
full-screen fractal noise animation, redrawing only the cells that change.

Available commands:
  ramps    - Show the named glyph ramps
  serve    - Start SSH server that animates every session

Examples:
  noisefetch
  noisefetch --preset blocks --fps 30
  noisefetch --frames 300 --log-file /tmp/noisefetch.log --log-level debug
  noisefetch serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runAnimate,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file (default: config log.file, else discarded)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(rampsCmd)
	rootCmd.AddCommand(serveCmd)
}
