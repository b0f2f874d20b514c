package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// Color is a palette entry stored as a "#rrggbb" string in YAML.
type Color struct {
	core.RGB
}

// NewColor wraps an RGB triple.
func NewColor(r, g, b uint8) Color {
	return Color{RGB: core.RGB{R: r, G: g, B: b}}
}

// ParseColor parses a hex colour ("#rgb" or "#rrggbb").
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return NewColor(r, g, b), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Hex(), nil
}
