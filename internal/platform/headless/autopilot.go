package headless

import (
	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/runner"
)

// Autopilot jumps over ground obstacles. Flying obstacles pass above a
// grounded player, so they are ignored.
type Autopilot struct {
	// LeadFrames is how many frames of travel before contact the jump starts.
	LeadFrames float64
}

// DefaultAutopilot returns an autopilot tuned for the default physics.
func DefaultAutopilot() Autopilot {
	return Autopilot{LeadFrames: 8}
}

// Decide returns the input for the next frame.
func (a Autopilot) Decide(snap runner.Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	switch snap.Phase {
	case runner.PhaseIdle:
		in.Set(core.ActionJump)
		return in
	case runner.PhaseGameOver:
		return in
	}

	if snap.Jumping {
		return in
	}

	lead := snap.Speed * a.LeadFrames
	for _, o := range snap.Obstacles {
		if o.Kind != runner.KindGround {
			continue
		}
		gap := o.X - snap.Player.Right()
		if gap >= 0 && gap <= lead {
			in.Set(core.ActionJump)
			break
		}
	}
	return in
}
