package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/dino-runner/internal/core"
)

func jumpInput() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func restartInput() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	return in
}

func TestNewGameIsIdle(t *testing.T) {
	g, _ := newTestGame(1.0 / 60)
	st := g.State()

	if st.Phase != PhaseIdle {
		t.Errorf("phase = %v, expected idle", st.Phase)
	}
	if st.Player.X != 100 || st.Player.Y != 316 {
		t.Errorf("player at (%v, %v), expected (100, 316)", st.Player.X, st.Player.Y)
	}
	if st.Ground.Width != 1600 || st.Ground.Y != 360 {
		t.Errorf("ground = %+v, expected 1600 wide at y=360", st.Ground)
	}
}

func TestIdleIsFrozen(t *testing.T) {
	g, clock := newTestGame(10)

	for i := 0; i < 100; i++ {
		g.Update()
	}

	st := g.State()
	if st.Phase != PhaseIdle || st.Frame != 0 || len(st.Obstacles) != 0 || st.SpawnTimer != 0 {
		t.Errorf("idle game should not simulate, got %+v", st)
	}
	if clock.Restarts != 0 {
		t.Errorf("idle game should not read the clock, got %d restarts", clock.Restarts)
	}
}

func TestJumpStartsRun(t *testing.T) {
	g, clock := newTestGame(1.0 / 60)

	g.HandleInput(jumpInput())

	st := g.State()
	if st.Phase != PhaseRunning {
		t.Errorf("phase = %v, expected running", st.Phase)
	}
	if st.Player.VelocityY != -12 || !st.Player.Jumping {
		t.Errorf("velocity %v jumping %v, expected -12 true", st.Player.VelocityY, st.Player.Jumping)
	}
	if clock.Restarts != 1 {
		t.Errorf("clock restarts = %d, expected 1", clock.Restarts)
	}
}

func TestNoDoubleJumpWhileRunning(t *testing.T) {
	g, _ := newTestGame(1.0 / 60)
	g.Step(jumpInput())

	before := g.State().Player
	if !before.Jumping {
		t.Fatal("player should be airborne after the first jump")
	}

	g.HandleInput(jumpInput())

	after := g.State().Player
	if after.VelocityY != before.VelocityY {
		t.Errorf("second jump changed velocity from %v to %v", before.VelocityY, after.VelocityY)
	}
}

func TestCollisionEndsRunOnce(t *testing.T) {
	// Zero-step clock: no spawns, only the hand-placed obstacle
	g, _ := newTestGame(0)
	g.HandleInput(jumpInput())
	g.state.Player = Player{X: 100, Y: 316, Width: 44, Height: 44}
	g.state.Obstacles = append(g.state.Obstacles, Obstacle{Kind: KindGround, X: 800, Y: 320, Width: 20, Height: 40})

	collisions := 0
	collidedAt := uint64(0)
	for frame := 0; frame < 142; frame++ {
		res := g.Update()
		if res.Collided {
			collisions++
			collidedAt = g.State().Frame
		}
	}

	if collisions != 1 {
		t.Errorf("collisions = %d, expected exactly 1", collisions)
	}
	if g.Phase() != PhaseGameOver {
		t.Errorf("phase = %v, expected game over", g.Phase())
	}
	// 800 - 6n < 144 first holds at n = 110
	if collidedAt != 110 {
		t.Errorf("collision at frame %d, expected 110", collidedAt)
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, expected 0", g.Score())
	}
}

func TestGameOverIsFrozen(t *testing.T) {
	g, _ := newTestGame(1.0 / 60)
	g.HandleInput(jumpInput())
	g.state.Phase = PhaseGameOver
	g.state.Obstacles = []Obstacle{{Kind: KindGround, X: 300, Y: 320, Width: 20, Height: 40}}
	before := g.State()

	g.Step(jumpInput())
	g.Update()

	after := g.State()
	if after.Phase != PhaseGameOver {
		t.Errorf("jump during game over should be ignored, phase = %v", after.Phase)
	}
	if after.Obstacles[0].X != before.Obstacles[0].X || after.Player != before.Player || after.Frame != before.Frame {
		t.Error("simulation should not advance during game over")
	}
}

func TestRestart(t *testing.T) {
	g, clock := newTestGame(1.0 / 60)
	g.HandleInput(jumpInput())
	g.state.Phase = PhaseGameOver
	g.state.Score = 12
	g.state.SpawnTimer = 0.7
	g.state.Ground.X = -300
	g.state.Player.Y = 250
	g.state.Player.VelocityY = 3
	g.state.Player.Jumping = true
	g.state.Obstacles = []Obstacle{
		{Kind: KindGround, X: 300, Y: 320, Width: 20, Height: 40}, // A
		{Kind: KindGround, X: 500, Y: 310, Width: 30, Height: 50}, // B
		{Kind: KindFlying, X: 600, Y: 240, Width: 40, Height: 20}, // C
	}
	restartsBefore := clock.Restarts

	g.HandleInput(restartInput())

	st := g.State()
	if st.Score != 0 {
		t.Errorf("score = %d, expected 0", st.Score)
	}
	if len(st.Obstacles) != 0 {
		t.Errorf("obstacles = %v, expected none", st.Obstacles)
	}
	if st.Player.X != 100 || st.Player.Y != 316 || st.Player.VelocityY != 0 || st.Player.Jumping {
		t.Errorf("player = %+v, expected grounded at (100, 316) with no velocity", st.Player)
	}
	if st.Ground.X != 0 || st.SpawnTimer != 0 {
		t.Errorf("ground x %v spawn timer %v, expected both 0", st.Ground.X, st.SpawnTimer)
	}
	if st.Phase != PhaseRunning {
		t.Errorf("phase = %v, expected running without a second jump", st.Phase)
	}
	if clock.Restarts != restartsBefore+1 {
		t.Errorf("restart should restart the clock")
	}

	// Runs immediately
	g.Update()
	if g.State().Frame != 1 {
		t.Errorf("frame = %d after restart and one update, expected 1", g.State().Frame)
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	g, _ := newTestGame(1.0 / 60)
	g.HandleInput(jumpInput())
	g.state.Score = 7

	g.HandleInput(restartInput())

	if g.Score() != 7 || g.Phase() != PhaseRunning {
		t.Errorf("restart while running should be ignored, score %d phase %v", g.Score(), g.Phase())
	}
}

func TestCulledObstacleNeverCollides(t *testing.T) {
	g, _ := newTestGame(0)
	g.HandleInput(jumpInput())
	g.state.Player = Player{X: 100, Y: 316, Width: 44, Height: 44}
	// Wide enough to still overlap the player after leaving past -50
	g.state.Obstacles = []Obstacle{{Kind: KindGround, X: -45, Y: 300, Width: 300, Height: 60}}

	res := g.Update()

	if res.Collided || g.Phase() != PhaseRunning {
		t.Errorf("obstacle removed this frame must not end the run, result %+v", res)
	}
	if res.Removed != 1 || g.Score() != 1 {
		t.Errorf("removed %d score %d, expected 1 and 1", res.Removed, g.Score())
	}
}

func TestScoreDrivesSpeed(t *testing.T) {
	g, _ := newTestGame(0)
	g.HandleInput(jumpInput())
	g.state.Score = 40
	g.state.Obstacles = []Obstacle{{Kind: KindFlying, X: 700, Y: 100, Width: 40, Height: 20}}

	g.Update()

	// speed = 6 + 40/20 = 8
	if x := g.State().Obstacles[0].X; x != 692 {
		t.Errorf("obstacle x = %v, expected 692", x)
	}
	if s := g.Snapshot(); s.Speed != 8 || math.Abs(s.SpawnDelay-0.7) > 1e-9 {
		t.Errorf("snapshot speed %v delay %v, expected 8 and 0.7", s.Speed, s.SpawnDelay)
	}
}

func TestSpawnsFollowClock(t *testing.T) {
	g, _ := newTestGame(0.5)
	g.HandleInput(jumpInput())

	spawned := 0
	for i := 0; i < 8; i++ {
		if res := g.Update(); res.Spawned != nil {
			spawned++
			if res.Spawned.Kind != KindGround {
				t.Errorf("score 0 spawned %v", res.Spawned.Kind)
			}
		}
	}

	// Timer 0.5, 1.0, 1.5, 2.0 -> spawn on the 4th frame, then every 4th
	if spawned != 2 {
		t.Errorf("spawned %d obstacles in 8 frames, expected 2", spawned)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() GameState {
		clock := NewFixedClock(1.0 / 60)
		g := New(testConfig(), WithClock(clock), WithSeed(12345))
		for i := 0; i < 3000; i++ {
			in := core.NewInputFrame()
			if i%25 == 0 {
				in.Set(core.ActionJump)
			}
			if g.Phase() == PhaseGameOver {
				in.Set(core.ActionRestart)
			}
			g.Step(in)
		}
		return g.State()
	}

	a, b := run(), run()
	if a.Score != b.Score || a.Frame != b.Frame || a.Player != b.Player || len(a.Obstacles) != len(b.Obstacles) {
		t.Errorf("determinism failed: %+v vs %+v", a, b)
	}
}

func TestPlayerStaysAboveFloor(t *testing.T) {
	g, _ := newTestGame(1.0 / 60)
	floor := 360.0 - 44

	for i := 0; i < 5000; i++ {
		in := core.NewInputFrame()
		if i%7 == 0 {
			in.Set(core.ActionJump)
		}
		if g.Phase() == PhaseGameOver {
			in.Set(core.ActionRestart)
		}
		g.Step(in)
		if y := g.State().Player.Y; y > floor {
			t.Fatalf("frame %d: player y %v below floor %v", i, y, floor)
		}
	}
}

func TestSnapshot(t *testing.T) {
	g, _ := newTestGame(1.0 / 60)
	g.HandleInput(jumpInput())
	g.state.Score = 3
	g.state.Obstacles = []Obstacle{{Kind: KindGround, X: 300, Y: 320, Width: 20, Height: 40}}

	snap := g.Snapshot()
	snap.Obstacles[0].X = -1000

	if g.State().Obstacles[0].X != 300 {
		t.Error("snapshot obstacles should be a copy")
	}
	if snap.ScoreText() != "Score: 3" {
		t.Errorf("ScoreText() = %q", snap.ScoreText())
	}
	if snap.Width != 800 || snap.Height != 400 {
		t.Errorf("snapshot size = %dx%d, expected 800x400", snap.Width, snap.Height)
	}
	if snap.Player != core.NewRectF(100, 316, 44, 44) {
		t.Errorf("snapshot player = %+v", snap.Player)
	}
}

func TestReset(t *testing.T) {
	g, _ := newTestGame(1.0 / 60)
	g.HandleInput(jumpInput())
	for i := 0; i < 200; i++ {
		g.Update()
	}

	g.Reset()

	st := g.State()
	if st.Phase != PhaseIdle || st.Score != 0 || st.Frame != 0 || len(st.Obstacles) != 0 {
		t.Errorf("Reset should return to a fresh idle session, got %+v", st)
	}
}
