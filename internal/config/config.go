// Package config provides YAML-based configuration loading and difficulty
// management for the runner.
package config

// RunnerConfig contains every tunable constant of the game.
type RunnerConfig struct {
	Window     WindowConfig     `yaml:"window"`
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Palette    PaletteConfig    `yaml:"palette"`
}

// WindowConfig defines the visible area in world units.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// WorldConfig defines the ground line and the off-screen threshold.
type WorldConfig struct {
	GroundY         float64 `yaml:"ground_y"`
	GroundThickness float64 `yaml:"ground_thickness"`
	DespawnX        float64 `yaml:"despawn_x"` // Obstacles left of this are removed and scored
}

// PhysicsConfig defines vertical motion of the player.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`       // Units per frame squared
	JumpVelocity float64 `yaml:"jump_velocity"` // Negative = up
}

// PlayerConfig defines the player's fixed column and bounding box.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines obstacle geometry. Ranges are half-open:
// width is drawn from [MinWidth, MinWidth+WidthRange).
type ObstacleConfig struct {
	MinWidth       int     `yaml:"min_width"`
	WidthRange     int     `yaml:"width_range"`
	MinHeight      int     `yaml:"min_height"`
	HeightRange    int     `yaml:"height_range"`
	FlyingWidth    float64 `yaml:"flying_width"`
	FlyingHeight   float64 `yaml:"flying_height"`
	FlyingAltitude int     `yaml:"flying_altitude"` // Units above ground of the lowest flying band
	FlyingJitter   int     `yaml:"flying_jitter"`   // Extra altitude drawn from [0, FlyingJitter)
}

// SpawnConfig defines the spawn decision.
type SpawnConfig struct {
	FlyingMinScore int `yaml:"flying_min_score"` // Flying obstacles need at least this score
	FlyingChance   int `yaml:"flying_chance"`    // Outcomes out of Outcomes that pick flying
	Outcomes       int `yaml:"outcomes"`
}

// DifficultyConfig defines how speed and spawn delay follow the score.
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"`
	BaseSpeed    float64 `yaml:"base_speed"`    // Units per frame at score 0
	SpeedDivisor float64 `yaml:"speed_divisor"` // Score points per extra unit of speed
	BaseDelay    float64 `yaml:"base_delay"`    // Seconds between spawns at score 0
	MinDelay     float64 `yaml:"min_delay"`     // Spawn delay floor
	DelayStep    float64 `yaml:"delay_step"`    // Seconds removed from the delay per point
}

// PaletteConfig defines every colour the frontends draw with.
type PaletteConfig struct {
	Ground     []Color `yaml:"ground"` // Ground obstacle colours, picked uniformly
	Flying     Color   `yaml:"flying"`
	Player     Color   `yaml:"player"`
	Floor      Color   `yaml:"floor"`
	Background Color   `yaml:"background"`
	Score      Color   `yaml:"score"`
	Banner     Color   `yaml:"banner"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
