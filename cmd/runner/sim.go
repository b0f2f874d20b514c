package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/registry"
)

var flagFrames int

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Simulate the game without a display, driven by a simple autopilot and a
fixed-step clock. Useful for checking difficulty settings and seeds.

With --frames 0 the simulation stops after the first game over. Otherwise
it restarts after every collision until the frame budget is spent.

Examples:
  runner sim
  runner sim --frames 36000 --seed 7
  runner sim --difficulty hard --frames 18000`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 0, "Frames to simulate (0 = one run until game over)")
}

func runSim(_ *cobra.Command, _ []string) {
	if err := simulate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func simulate() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	frontend, err := registry.Create("headless")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := registryOptions(cfg, logger)
	opts.Frames = flagFrames
	return frontend.Run(ctx, opts)
}

// registryOptions collects the settings every frontend receives.
func registryOptions(cfg config.RunnerConfig, logger *log.Logger) registry.Options {
	return registry.Options{
		Config:   cfg,
		Runtime:  runtimeConfig(),
		Logger:   logger,
		Out:      os.Stdout,
		FontPath: flagFont,
	}
}
