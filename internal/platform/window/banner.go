package window

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/dino-runner/internal/runner"
)

// bannerFadeDuration is how long the game-over banner takes to appear, in seconds.
const bannerFadeDuration float32 = 0.4

// bannerFade animates the game-over banner's opacity. The tween starts on the
// first frame spent in GameOver and is dropped as soon as a new run begins.
type bannerFade struct {
	duration float32
	tween    *gween.Tween
	alpha    float32
}

func newBannerFade(duration float32) *bannerFade {
	return &bannerFade{duration: duration}
}

// Update advances the fade by dt seconds.
func (b *bannerFade) Update(phase runner.Phase, dt float32) {
	if phase != runner.PhaseGameOver {
		b.tween = nil
		b.alpha = 0
		return
	}
	if b.tween == nil {
		b.tween = gween.New(0, 1, b.duration, ease.OutQuad)
	}
	b.alpha, _ = b.tween.Update(dt)
}

// Alpha returns the current opacity in [0, 1].
func (b *bannerFade) Alpha() float32 {
	return b.alpha
}
