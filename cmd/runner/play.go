package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/platform/window"
	"github.com/vovakirdan/dino-runner/internal/registry"
)

var (
	flagFrontend string
	flagFont     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session in the chosen frontend.

Controls:
  Space      - Start / Jump
  Enter      - Restart (after game over)
  Q/Esc      - Quit

Difficulty options:
  easy   - Slower start, longer gaps between obstacles
  normal - Default curve
  hard   - Faster start, shorter minimum gap
  fixed  - No progression, speed and gaps never change

Examples:
  runner play
  runner play --frontend window
  runner play --frontend window --font ./fonts/mono.ttf
  runner play --difficulty easy
  runner play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Frontend to use (see 'runner list')")
	playCmd.Flags().StringVar(&flagFont, "font", "", "TTF font for the window frontend (default: built-in Go Regular)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if !registry.Exists(flagFrontend) {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q\n", flagFrontend)
		fmt.Fprintln(os.Stderr, "Run 'runner list' to see available frontends.")
		os.Exit(1)
	}

	if err := play(flagFrontend); err != nil {
		var fatal *window.FatalStartupError
		if errors.As(err, &fatal) {
			fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// play runs one frontend until the player quits or an interrupt arrives.
func play(frontendID string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(frontendID == "tui")
	if err != nil {
		return err
	}
	defer closeLog()

	frontend, err := registry.Create(frontendID)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting session", "frontend", frontendID, "seed", flagSeed, "difficulty", flagDifficulty,
		"progression", !config.IsFixedPreset(config.DifficultyPreset(flagDifficulty)) && cfg.Difficulty.Enabled)
	return frontend.Run(ctx, registryOptions(cfg, logger))
}
