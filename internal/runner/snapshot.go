package runner

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// BannerText is shown while the game is over.
const BannerText = "Game Over!\nPress Enter to Restart"

// StartText is shown before the first jump.
const StartText = "Press Space to Start"

// Snapshot is a read-only view of everything a frontend draws.
type Snapshot struct {
	Phase      Phase
	Score      int
	Frame      uint64
	Speed      float64
	SpawnDelay float64

	Width, Height int // Visible area in world units

	Player      core.RectF
	Jumping     bool
	PlayerColor core.RGB
	Ground      core.RectF
	GroundColor core.RGB
	Background  core.RGB
	ScoreColor  core.RGB
	BannerColor core.RGB
	Obstacles   []Obstacle
}

// ScoreText returns the HUD score line.
func (s Snapshot) ScoreText() string {
	return fmt.Sprintf("Score: %d", s.Score)
}

// Snapshot returns the current frame's drawable state.
func (g *Game) Snapshot() Snapshot {
	st := g.state
	return Snapshot{
		Phase:       st.Phase,
		Score:       st.Score,
		Frame:       st.Frame,
		Speed:       g.difficulty.Speed(st.Score),
		SpawnDelay:  g.difficulty.SpawnDelay(st.Score),
		Width:       g.cfg.Window.Width,
		Height:      g.cfg.Window.Height,
		Player:      st.Player.Bounds(),
		Jumping:     st.Player.Jumping,
		PlayerColor: g.cfg.Palette.Player.RGB,
		Ground:      st.Ground.Bounds(),
		GroundColor: g.cfg.Palette.Floor.RGB,
		Background:  g.cfg.Palette.Background.RGB,
		ScoreColor:  g.cfg.Palette.Score.RGB,
		BannerColor: g.cfg.Palette.Banner.RGB,
		Obstacles:   slices.Clone(st.Obstacles),
	}
}
