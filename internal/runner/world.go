package runner

import "github.com/vovakirdan/dino-runner/internal/core"

// GroundStrip is the scrolling floor. It is twice the window width so that
// wrapping back to zero is invisible.
type GroundStrip struct {
	X, Y   float64
	Width  float64
	Height float64
}

// Bounds returns the strip's rectangle.
func (g GroundStrip) Bounds() core.RectF {
	return core.NewRectF(g.X, g.Y, g.Width, g.Height)
}

// Scroll moves the ground and every obstacle left by speed.
// The ground wraps back to x=0 once it has scrolled past -wrapAt.
func Scroll(st *GameState, speed, wrapAt float64) {
	st.Ground.X -= speed
	if st.Ground.X <= -wrapAt {
		st.Ground.X = 0
	}
	for i := range st.Obstacles {
		st.Obstacles[i].X -= speed
	}
}

// Cull removes obstacles whose x is below despawnX, adding one point per
// removed obstacle. Order of the remaining obstacles is preserved.
func Cull(st *GameState, despawnX float64) int {
	removed := 0
	kept := st.Obstacles[:0]
	for _, o := range st.Obstacles {
		if o.X < despawnX {
			removed++
			continue
		}
		kept = append(kept, o)
	}
	// Drop references past the new length
	for i := len(kept); i < len(st.Obstacles); i++ {
		st.Obstacles[i] = Obstacle{}
	}
	st.Obstacles = kept
	st.Score += removed
	return removed
}

// scanOrder is the order in which obstacle kinds are tested for collisions.
var scanOrder = [...]ObstacleKind{KindGround, KindFlying}

// FirstCollision returns the index of the first obstacle overlapping player.
// Ground obstacles are tested before flying ones, each in insertion order.
func FirstCollision(player core.RectF, obstacles []Obstacle) (int, bool) {
	for _, kind := range scanOrder {
		for i, o := range obstacles {
			if o.Kind != kind {
				continue
			}
			if player.Intersects(o.Bounds()) {
				return i, true
			}
		}
	}
	return -1, false
}
