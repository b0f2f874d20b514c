package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 400,
			Title:  "Chrome Dino Clone",
		},
		World: WorldConfig{
			GroundY:         360,
			GroundThickness: 5,
			DespawnX:        -50,
		},
		Physics: PhysicsConfig{
			Gravity:      0.6,
			JumpVelocity: -12,
		},
		Player: PlayerConfig{
			X:      100,
			Width:  44,
			Height: 44,
		},
		Obstacles: ObstacleConfig{
			MinWidth:       20,
			WidthRange:     20,
			MinHeight:      40,
			HeightRange:    20,
			FlyingWidth:    40,
			FlyingHeight:   20,
			FlyingAltitude: 100,
			FlyingJitter:   40,
		},
		Spawn: SpawnConfig{
			FlyingMinScore: 5,
			FlyingChance:   2,
			Outcomes:       10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			BaseSpeed:    6.0,
			SpeedDivisor: 20.0,
			BaseDelay:    1.5,
			MinDelay:     0.5,
			DelayStep:    0.02,
		},
		Palette: PaletteConfig{
			Ground: []Color{
				NewColor(255, 50, 50),  // red
				NewColor(50, 200, 50),  // green
				NewColor(50, 150, 255), // blue
				NewColor(255, 200, 0),  // yellow
				NewColor(150, 0, 255),  // purple
			},
			Flying:     NewColor(100, 100, 255),
			Player:     NewColor(50, 200, 100),
			Floor:      NewColor(100, 100, 100),
			Background: NewColor(0, 0, 0),
			Score:      NewColor(255, 255, 255),
			Banner:     NewColor(255, 255, 0),
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
