// Package runner implements the endless runner simulation: physics, obstacle
// spawning, scrolling, collision detection and the Idle/Running/GameOver state
// machine. It has no UI dependencies; frontends feed it input frames and draw
// its snapshots.
package runner

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Game owns a session's state and advances it one frame at a time.
type Game struct {
	cfg        config.RunnerConfig
	difficulty *config.DifficultyManager
	spawner    *Spawner
	clock      Clock
	logger     *log.Logger
	state      GameState
}

// StepResult is returned by Update and Step after each frame.
type StepResult struct {
	Phase    Phase
	Score    int
	Removed  int       // Obstacles culled (and scored) this frame
	Spawned  *Obstacle // Obstacle created this frame, if any
	Collided bool      // Whether this frame ended the run
}

type options struct {
	rng    Rand
	clock  Clock
	logger *log.Logger
}

// Option configures a Game.
type Option func(*options)

// WithRand injects the random source used by the spawner.
func WithRand(r Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithSeed seeds the spawner's random source. Zero means wall-clock time.
func WithSeed(seed int64) Option {
	return func(o *options) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithClock injects the frame clock.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger sets the logger for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New creates a game in the Idle phase.
func New(cfg config.RunnerConfig, opts ...Option) *Game {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.clock == nil {
		o.clock = NewWallClock()
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		spawner:    NewSpawner(cfg, o.rng),
		clock:      o.clock,
		logger:     o.logger,
		state:      newGameState(cfg),
	}
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.state.Phase
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.state.Score
}

// State returns a copy of the full simulation state.
func (g *Game) State() GameState {
	return g.state.Clone()
}

// Reset discards the session and returns to Idle.
func (g *Game) Reset() {
	g.state = newGameState(g.cfg)
}

// HandleInput applies the input of one frame.
// Jump starts the run from Idle and is ignored after game over.
// Restart only has an effect during game over.
func (g *Game) HandleInput(in core.InputFrame) {
	switch g.state.Phase {
	case PhaseIdle:
		if in.Has(core.ActionJump) {
			g.state.Phase = PhaseRunning
			g.clock.Restart()
			g.logger.Info("run started")
			g.state.Player.Jump(g.cfg.Physics.JumpVelocity)
		}
	case PhaseRunning:
		if in.Has(core.ActionJump) {
			g.state.Player.Jump(g.cfg.Physics.JumpVelocity)
		}
	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.restart()
		}
	}
}

// restart resets all mutable state and resumes running without waiting
// for another jump.
func (g *Game) restart() {
	g.state = newGameState(g.cfg)
	g.state.Phase = PhaseRunning
	g.clock.Restart()
	g.logger.Info("run restarted")
}

// Update advances the simulation by one frame. Outside the Running phase
// the state is frozen and Update does nothing.
func (g *Game) Update() StepResult {
	st := &g.state
	if st.Phase != PhaseRunning {
		return g.result()
	}

	dt := g.clock.Restart()
	st.Frame++

	Integrate(&st.Player, g.cfg.Physics.Gravity, g.cfg.World.GroundY)

	speed := g.difficulty.Speed(st.Score)
	delay := g.difficulty.SpawnDelay(st.Score)

	res := StepResult{}
	if o, ok := g.spawner.Tick(st, dt, delay); ok {
		res.Spawned = &o
		g.logger.Debug("spawned", "kind", o.Kind, "x", o.X, "y", o.Y, "w", o.Width, "h", o.Height)
	}

	Scroll(st, speed, float64(g.cfg.Window.Width))
	res.Removed = Cull(st, g.cfg.World.DespawnX)

	if i, hit := FirstCollision(st.Player.Bounds(), st.Obstacles); hit {
		st.Phase = PhaseGameOver
		res.Collided = true
		g.logger.Info("game over", "score", st.Score, "frame", st.Frame, "obstacle", st.Obstacles[i].Kind,
			"ground", st.CountKind(KindGround), "flying", st.CountKind(KindFlying))
	}

	res.Phase = st.Phase
	res.Score = st.Score
	return res
}

// Step applies input and advances one frame.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.HandleInput(in)
	return g.Update()
}

func (g *Game) result() StepResult {
	return StepResult{Phase: g.state.Phase, Score: g.state.Score}
}
