package runner

import "github.com/vovakirdan/dino-runner/internal/core"

// Player is the controllable runner. X never changes during a session.
type Player struct {
	X, Y      float64
	VelocityY float64
	Jumping   bool
	Width     float64
	Height    float64
}

// Bounds returns the player's bounding box.
func (p Player) Bounds() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// Jump starts a jump with the given (negative) impulse.
// Returns false without changing anything when already airborne.
func (p *Player) Jump(impulse float64) bool {
	if p.Jumping {
		return false
	}
	p.VelocityY = impulse
	p.Jumping = true
	return true
}

// Integrate applies one frame of gravity and resolves ground contact.
// After the call the player's top edge is never below groundY - Height.
func Integrate(p *Player, gravity, groundY float64) {
	p.VelocityY += gravity
	p.Y += p.VelocityY

	floor := groundY - p.Height
	if p.Y >= floor {
		p.Y = floor
		p.Jumping = false
	}
}
