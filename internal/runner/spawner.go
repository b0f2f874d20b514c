package runner

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Rand is the random source the spawner draws from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Spawner decides when and what to spawn.
type Spawner struct {
	rng         Rand
	spawnX      float64
	groundY     float64
	obstacles   config.ObstacleConfig
	rules       config.SpawnConfig
	palette     []core.RGB
	flyingColor core.RGB
}

// NewSpawner creates a spawner placing new obstacles at the right edge of the window.
func NewSpawner(cfg config.RunnerConfig, rng Rand) *Spawner {
	palette := make([]core.RGB, len(cfg.Palette.Ground))
	for i, c := range cfg.Palette.Ground {
		palette[i] = c.RGB
	}
	return &Spawner{
		rng:         rng,
		spawnX:      float64(cfg.Window.Width),
		groundY:     cfg.World.GroundY,
		obstacles:   cfg.Obstacles,
		rules:       cfg.Spawn,
		palette:     palette,
		flyingColor: cfg.Palette.Flying.RGB,
	}
}

// Tick accumulates dt into the spawn timer. Once the timer exceeds delay it
// spawns exactly one obstacle, appends it to the state and resets the timer.
func (s *Spawner) Tick(st *GameState, dt, delay float64) (Obstacle, bool) {
	st.SpawnTimer += dt
	if st.SpawnTimer <= delay {
		return Obstacle{}, false
	}

	o := s.Spawn(st.Score)
	st.Obstacles = append(st.Obstacles, o)
	st.SpawnTimer = 0
	return o, true
}

// Spawn draws one spawn decision for the given score.
// Flying obstacles are only possible once score reaches FlyingMinScore.
func (s *Spawner) Spawn(score int) Obstacle {
	r := s.rng.Intn(s.rules.Outcomes)
	if r < s.rules.FlyingChance && score >= s.rules.FlyingMinScore {
		return s.flying()
	}
	return s.ground()
}

func (s *Spawner) flying() Obstacle {
	y := s.groundY - float64(s.obstacles.FlyingAltitude) - float64(s.rng.Intn(s.obstacles.FlyingJitter))
	return Obstacle{
		Kind:   KindFlying,
		X:      s.spawnX,
		Y:      y,
		Width:  s.obstacles.FlyingWidth,
		Height: s.obstacles.FlyingHeight,
		Color:  s.flyingColor,
	}
}

func (s *Spawner) ground() Obstacle {
	width := float64(s.obstacles.MinWidth + s.rng.Intn(s.obstacles.WidthRange))
	height := float64(s.obstacles.MinHeight + s.rng.Intn(s.obstacles.HeightRange))
	color := s.palette[s.rng.Intn(len(s.palette))]
	return Obstacle{
		Kind:   KindGround,
		X:      s.spawnX,
		Y:      s.groundY - height,
		Width:  width,
		Height: height,
		Color:  color,
	}
}
