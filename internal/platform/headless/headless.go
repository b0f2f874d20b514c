// Package headless runs the simulation without a display, driven by a
// fixed-step clock and an autopilot. It backs the "sim" command.
package headless

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/registry"
	"github.com/vovakirdan/dino-runner/internal/runner"
)

// Result summarizes a headless session.
type Result struct {
	Frames      int
	Runs        int   // Completed runs (each ended by a collision)
	Scores      []int // Final score of each completed run
	Best        int
	Interrupted bool
}

// maxSingleRunFrames bounds a single-run simulation (one hour at 60 fps).
const maxSingleRunFrames = 60 * 60 * 60

// Simulate steps g for up to frames frames, restarting after every game over.
// With frames <= 0 it stops after the first game over.
func Simulate(ctx context.Context, g *runner.Game, pilot Autopilot, frames int) Result {
	singleRun := frames <= 0
	if singleRun {
		frames = maxSingleRunFrames
	}

	var res Result
	for res.Frames < frames {
		select {
		case <-ctx.Done():
			res.Interrupted = true
			return res
		default:
		}

		if g.Phase() == runner.PhaseGameOver {
			if singleRun {
				break
			}
			in := core.NewInputFrame()
			in.Set(core.ActionRestart)
			g.HandleInput(in)
		}

		step := g.Step(pilot.Decide(g.Snapshot()))
		res.Frames++

		if step.Collided {
			res.Runs++
			res.Scores = append(res.Scores, step.Score)
			res.Best = max(res.Best, step.Score)
		}
	}
	return res
}

// Frontend is the registry adapter for headless simulation.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return "headless" }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Headless simulation (autopilot)" }

// Run implements registry.Frontend.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	tickRate := opts.Runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}

	g := runner.New(opts.Config,
		runner.WithSeed(opts.Runtime.Seed),
		runner.WithClock(runner.NewFixedClock(1/float64(tickRate))),
		runner.WithLogger(logger),
	)

	res := Simulate(ctx, g, DefaultAutopilot(), opts.Frames)
	logger.Info("simulation finished", "frames", res.Frames, "runs", res.Runs, "best", res.Best, "interrupted", res.Interrupted)

	fmt.Fprintf(out, "Frames: %d\n", res.Frames)
	fmt.Fprintf(out, "Runs:   %d\n", res.Runs)
	fmt.Fprintf(out, "Best:   %d\n", res.Best)
	if g.Phase() != runner.PhaseGameOver {
		fmt.Fprintf(out, "Current score: %d\n", g.Score())
	}
	return nil
}

func init() {
	registry.Register("headless", func() registry.Frontend {
		return Frontend{}
	})
}
