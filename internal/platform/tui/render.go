package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/runner"
)

// Glyphs used to draw world objects.
const (
	glyphPlayer  = '█'
	glyphGround  = '▓'
	glyphFlying  = '▒'
	glyphFloor   = '═'
	glyphJumping = '▀'
	glyphBlank   = ' '
	scoreOffsetX = 10.0
	scoreOffsetY = 10.0
)

// styleCache avoids rebuilding lipgloss styles for every run of cells.
type styleCache map[core.RGB]lipgloss.Style

func (c styleCache) get(rgb core.RGB) lipgloss.Style {
	if st, ok := c[rgb]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if !rgb.IsZero() {
		st = st.Foreground(lipgloss.Color(rgb.Hex()))
	}
	c[rgb] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
// Black cells use the terminal's default foreground.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())
	styles := styleCache{}

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styles.get(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// viewport maps world units onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(snap runner.Snapshot, dst *core.Screen) viewport {
	if snap.Width <= 0 || snap.Height <= 0 {
		return viewport{sx: 1, sy: 1}
	}
	return viewport{
		sx: float64(dst.Width()) / float64(snap.Width),
		sy: float64(dst.Height()) / float64(snap.Height),
	}
}

// cellRect returns the cells covered by r. Anything visible covers at least
// one cell so small obstacles never vanish on narrow terminals.
func (v viewport) cellRect(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func (v viewport) point(x, y float64) (int, int) {
	return int(x * v.sx), int(y * v.sy)
}

// DrawSnapshot renders a frame of the game onto dst.
func DrawSnapshot(dst *core.Screen, snap runner.Snapshot) {
	dst.Clear()
	v := newViewport(snap, dst)

	dst.DrawRect(v.cellRect(snap.Ground), glyphFloor, snap.GroundColor)

	for _, o := range snap.Obstacles {
		glyph := glyphGround
		if o.Kind == runner.KindFlying {
			glyph = glyphFlying
		}
		dst.DrawRect(v.cellRect(o.Bounds()), glyph, o.Color)
	}

	player := glyphPlayer
	if snap.Jumping {
		player = glyphJumping
	}
	dst.DrawRect(v.cellRect(snap.Player), player, snap.PlayerColor)

	sx, sy := v.point(scoreOffsetX, scoreOffsetY)
	dst.DrawText(sx, sy, snap.ScoreText(), snap.ScoreColor)

	switch snap.Phase {
	case runner.PhaseIdle:
		dst.DrawTextCentered(dst.Height()/2, runner.StartText, snap.BannerColor)
	case runner.PhaseGameOver:
		drawCenteredMessage(dst, strings.Split(runner.BannerText, "\n"), snap.BannerColor)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, lines []string, c core.RGB) {
	w := dst.Width()
	h := dst.Height()

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	boxX := core.Clamp((w-boxW)/2, 0, max(w-1, 0))
	boxY := core.Clamp((h-boxH)/2, 0, max(h-1, 0))

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, glyphBlank, c)
	dst.DrawBox(box, c)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		dst.DrawText(x, boxY+1+i, l, c)
	}
}
