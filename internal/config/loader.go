package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name looked up in the user and local config directories.
const ConfigFileName = "runner.yaml"

// Load loads the runner configuration.
// Search order: customPath -> ~/.dino-runner/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files only need to name the values they override.
func Load(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(ConfigFileName), filepath.Join("configs", ConfigFileName)} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
func Parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// Validate reports every value the simulation cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.World.GroundY <= 0 || c.World.GroundY > float64(c.Window.Height) {
		errs = append(errs, fmt.Errorf("world.ground_y %.1f must be within the window", c.World.GroundY))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player size must be positive"))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.JumpVelocity >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_velocity must be negative, got %v", c.Physics.JumpVelocity))
	}
	if c.Obstacles.MinWidth <= 0 || c.Obstacles.MinHeight <= 0 || c.Obstacles.WidthRange <= 0 || c.Obstacles.HeightRange <= 0 {
		errs = append(errs, errors.New("obstacle sizes and ranges must be positive"))
	}
	if c.Obstacles.FlyingWidth <= 0 || c.Obstacles.FlyingHeight <= 0 || c.Obstacles.FlyingJitter <= 0 {
		errs = append(errs, errors.New("flying obstacle size and jitter must be positive"))
	}
	if c.Spawn.Outcomes <= 0 || c.Spawn.FlyingChance < 0 || c.Spawn.FlyingChance > c.Spawn.Outcomes {
		errs = append(errs, fmt.Errorf("spawn.flying_chance %d must be within [0, outcomes=%d]", c.Spawn.FlyingChance, c.Spawn.Outcomes))
	}
	if c.Difficulty.BaseSpeed <= 0 || c.Difficulty.SpeedDivisor <= 0 {
		errs = append(errs, errors.New("difficulty.base_speed and speed_divisor must be positive"))
	}
	if c.Difficulty.MinDelay <= 0 || c.Difficulty.MinDelay > c.Difficulty.BaseDelay {
		errs = append(errs, fmt.Errorf("difficulty.min_delay %.2f must be positive and not above base_delay %.2f",
			c.Difficulty.MinDelay, c.Difficulty.BaseDelay))
	}
	if c.Difficulty.DelayStep < 0 {
		errs = append(errs, errors.New("difficulty.delay_step must not be negative"))
	}
	if len(c.Palette.Ground) == 0 {
		errs = append(errs, errors.New("palette.ground needs at least one colour"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dino-runner", filename)
}

// ParsePreset maps a CLI value to a preset. The empty string keeps the config as loaded.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Presets only move the constants; speed and spawn delay stay functions of score.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseSpeed = 5.0
		cfg.Difficulty.BaseDelay = 1.8
	case DifficultyNormal:
		defaults := DefaultRunnerConfig().Difficulty
		cfg.Difficulty = defaults
	case DifficultyHard:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseSpeed = 7.5
		cfg.Difficulty.MinDelay = 0.4
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
