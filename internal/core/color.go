package core

import "fmt"

// RGB is an opaque 24-bit colour. The zero value means "terminal default"
// for cell-based frontends.
type RGB struct {
	R, G, B uint8
}

// IsZero reports whether the colour is unset.
func (c RGB) IsZero() bool {
	return c == RGB{}
}

// Hex returns the colour as a "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Named colours used by the HUD.
var (
	White  = RGB{R: 255, G: 255, B: 255}
	Yellow = RGB{R: 255, G: 255, B: 0}
)
