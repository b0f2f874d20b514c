package runner

import "github.com/vovakirdan/dino-runner/internal/core"

// ObstacleKind discriminates the obstacle variants.
type ObstacleKind int

const (
	KindGround ObstacleKind = iota // Rests on the ground line, random size and colour
	KindFlying                     // Fixed size, floats above the ground
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindFlying:
		return "flying"
	default:
		return "unknown"
	}
}

// Obstacle is a hazard scrolling towards the player.
type Obstacle struct {
	Kind   ObstacleKind
	X, Y   float64 // Top-left corner
	Width  float64
	Height float64
	Color  core.RGB
}

// Bounds returns the obstacle's bounding box.
func (o Obstacle) Bounds() core.RectF {
	return core.NewRectF(o.X, o.Y, o.Width, o.Height)
}
