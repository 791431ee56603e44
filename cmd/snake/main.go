// snake is a tick-based snake game for the terminal and the desktop.
//
// Usage:
//
//	snake list               - List configured boards
//	snake play [board]       - Play a board (first board by default)
//	snake menu               - Pick a board and difficulty interactively
//	snake show [board]       - Print a board as text after N headless ticks
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.snake/config.yaml, ./configs/snake.yaml, built-in)
//	--fps <rate>        - Frame rate (default: from config)
//	--seed <value>      - RNG seed for reproducible apple placement
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	// Set up by the root command before any subcommand runs
	appConfig config.Config
	logger    *log.Logger
	logFile   *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a deterministic, tick-based snake game. Boards, speed and
difficulty come from a YAML config file.

Available commands:
  list     - Show all configured boards
  play     - Play a board directly (terminal or --gui window)
  menu     - Interactive board picker
  show     - Print a board as text, optionally after some ticks
  config   - Print the effective configuration

Examples:
  snake list
  snake play
  snake play small --difficulty hard
  snake play classic --gui
  snake show classic --ticks 5 --seed 42`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = timing.fps from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the logger, loads the config and registers its boards.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	logger, err = newLogger(cmd.Annotations[annotationInteractive] == "true")
	if err != nil {
		return err
	}

	appConfig, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "boards", len(appConfig.Boards), "tick", appConfig.Timing.TickInterval)

	snake.RegisterBoards(appConfig, logger)
	return nil
}

// fps returns the frame rate from the flag, falling back to the config.
func fps() int {
	if flagFPS > 0 {
		return flagFPS
	}
	return appConfig.Timing.FPS
}
