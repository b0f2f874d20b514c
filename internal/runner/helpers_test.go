package runner

import (
	"github.com/vovakirdan/dino-runner/internal/config"
)

// scriptedRand replays fixed values, wrapping around; each value is reduced modulo n.
type scriptedRand struct {
	values []int
	next   int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

func testConfig() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}

// newTestGame returns a game with a fixed-step clock and fixed seed.
func newTestGame(step float64) (*Game, *FixedClock) {
	clock := NewFixedClock(step)
	g := New(testConfig(), WithClock(clock), WithSeed(42))
	return g, clock
}
