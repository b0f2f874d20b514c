package runner

import (
	"slices"

	"github.com/vovakirdan/dino-runner/internal/config"
)

// Phase is the state machine's current state.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for the first jump
	PhaseRunning               // Simulating
	PhaseGameOver              // Frozen until restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// GameState holds all mutable simulation state of one session.
type GameState struct {
	Phase      Phase
	Player     Player
	Ground     GroundStrip
	Obstacles  []Obstacle // Insertion order, oldest first
	Score      int
	SpawnTimer float64 // Seconds since the last spawn
	Frame      uint64  // Frames simulated since the run started
}

// newGameState returns the state at the beginning of a session.
func newGameState(cfg config.RunnerConfig) GameState {
	return GameState{
		Phase: PhaseIdle,
		Player: Player{
			X:      cfg.Player.X,
			Y:      cfg.World.GroundY - cfg.Player.Height,
			Width:  cfg.Player.Width,
			Height: cfg.Player.Height,
		},
		Ground: GroundStrip{
			X:      0,
			Y:      cfg.World.GroundY,
			Width:  float64(cfg.Window.Width) * 2,
			Height: cfg.World.GroundThickness,
		},
		Obstacles: make([]Obstacle, 0, 8),
	}
}

// Clone returns a deep copy of the state.
func (s GameState) Clone() GameState {
	s.Obstacles = slices.Clone(s.Obstacles)
	return s
}

// CountKind returns how many live obstacles have the given kind.
func (s GameState) CountKind(kind ObstacleKind) int {
	n := 0
	for _, o := range s.Obstacles {
		if o.Kind == kind {
			n++
		}
	}
	return n
}
