// runner is an endless side-scrolling runner: jump over obstacles and see how
// long you last.
//
// Usage:
//
//	runner play              - Play in the terminal (default) or a window
//	runner sim               - Run a headless autopilot simulation
//	runner list              - List available frontends
//	runner config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load configuration from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"

	// Import frontends to register them
	_ "github.com/vovakirdan/dino-runner/internal/platform/headless"
	_ "github.com/vovakirdan/dino-runner/internal/platform/tui"
	_ "github.com/vovakirdan/dino-runner/internal/platform/window"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Dino Runner - an endless runner for the terminal and desktop",
	Long: `Dino Runner is a Chrome-dino style endless runner. Jump over ground
obstacles, let the flying ones pass overhead, and score a point for every
obstacle that scrolls off screen. The game speeds up as your score grows.

Available commands:
  play     - Play the game
  sim      - Run a headless simulation with an autopilot
  list     - Show available frontends
  config   - Print the default configuration

Examples:
  runner play
  runner play --frontend window
  runner play --difficulty hard --seed 42
  runner sim --frames 3600
  runner config > ~/.dino-runner/runner.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// runtimeConfig builds the runtime settings from global flags.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed
	return rt
}

// loadConfig loads the YAML config and applies the difficulty preset.
func loadConfig() (config.RunnerConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// newLogger creates the session logger. When the terminal is taken over by
// the game, logs go to --log-file or nowhere.
func newLogger(ownsTerminal bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	case ownsTerminal:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
		Level:           level,
	})
	return logger, closeFn, nil
}
