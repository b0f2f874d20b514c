package tui

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-runner/internal/registry"
	"github.com/vovakirdan/dino-runner/internal/runner"
)

// Frontend runs the game inside the terminal.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return "tui" }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run implements registry.Frontend. It blocks until the player quits or ctx
// is cancelled.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rt := opts.Runtime
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}

	g := runner.New(opts.Config,
		runner.WithSeed(rt.Seed),
		runner.WithLogger(logger),
	)
	model := NewModel(g, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
		logger.Info("terminal session interrupted")
		return nil
	}
	return err
}

func init() {
	registry.Register("tui", func() registry.Frontend {
		return Frontend{}
	})
}
