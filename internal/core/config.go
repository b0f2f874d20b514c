package core

// RuntimeConfig contains configuration passed to frontends at startup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (TUI only)
	ScreenH  int   // Screen height in characters (TUI only)
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time
	}
}
