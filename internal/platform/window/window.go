// Package window provides the Ebitengine desktop frontend: an 800x400 window
// with filled rectangles for world objects and a text/v2 HUD.
package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/registry"
	"github.com/vovakirdan/dino-runner/internal/runner"
)

// HUD layout in world units.
const (
	scoreX        = 10
	scoreY        = 10
	scoreSize     = 20
	bannerSize    = 28
	bannerOffsetX = 150
	bannerOffsetY = 50
	promptSize    = 20
)

// App implements ebiten.Game on top of a runner.Game.
type App struct {
	ctx        context.Context
	game       *runner.Game
	logger     *log.Logger
	scoreFace  *text.GoTextFace
	bannerFace *text.GoTextFace
	promptFace *text.GoTextFace
	banner     *bannerFade
	tps        int
}

// NewApp wires a game to the faces built from source.
func NewApp(ctx context.Context, g *runner.Game, source *text.GoTextFaceSource, tps int, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &App{
		ctx:        ctx,
		game:       g,
		logger:     logger,
		scoreFace:  &text.GoTextFace{Source: source, Size: scoreSize},
		bannerFace: &text.GoTextFace{Source: source, Size: bannerSize},
		promptFace: &text.GoTextFace{Source: source, Size: promptSize},
		banner:     newBannerFade(bannerFadeDuration),
		tps:        tps,
	}
}

// pollInput samples the keyboard for one frame. Keys are level-triggered:
// holding Space keeps requesting jumps, which the player ignores mid-air.
func pollInput(pressed func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	if pressed(ebiten.KeySpace) {
		in.Set(core.ActionJump)
	}
	if pressed(ebiten.KeyEnter) || pressed(ebiten.KeyNumpadEnter) {
		in.Set(core.ActionRestart)
	}
	return in
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	select {
	case <-a.ctx.Done():
		return ebiten.Termination
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.logger.Info("quit requested", "score", a.game.Score())
		return ebiten.Termination
	}

	res := a.game.Step(pollInput(ebiten.IsKeyPressed))
	a.banner.Update(res.Phase, 1/float32(a.tps))
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.game.Snapshot()

	screen.Fill(toColor(snap.Background))
	fillRect(screen, snap.Ground, snap.GroundColor)
	for _, o := range snap.Obstacles {
		fillRect(screen, o.Bounds(), o.Color)
	}
	fillRect(screen, snap.Player, snap.PlayerColor)

	drawText(screen, snap.ScoreText(), a.scoreFace, scoreX, scoreY, snap.ScoreColor, 1)

	bx := float64(snap.Width)/2 - bannerOffsetX
	by := float64(snap.Height)/2 - bannerOffsetY
	switch snap.Phase {
	case runner.PhaseIdle:
		drawText(screen, runner.StartText, a.promptFace, bx, by, snap.BannerColor, 1)
	case runner.PhaseGameOver:
		drawText(screen, runner.BannerText, a.bannerFace, bx, by, snap.BannerColor, a.banner.Alpha())
	}
}

// Layout implements ebiten.Game. The logical screen always matches the world.
func (a *App) Layout(_, _ int) (int, int) {
	cfg := a.game.Config()
	return cfg.Window.Width, cfg.Window.Height
}

func toColor(c core.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func fillRect(dst *ebiten.Image, r core.RectF, c core.RGB) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), toColor(c), false)
}

func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c core.RGB, alpha float32) {
	if alpha <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(toColor(c))
	op.ColorScale.ScaleAlpha(alpha)
	op.LineSpacing = face.Size * 1.2
	text.Draw(dst, s, face, op)
}

// Frontend opens a desktop window.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return "window" }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Desktop window (Ebitengine)" }

// Run implements registry.Frontend. Font errors are returned as
// *FatalStartupError before any window is opened.
func (Frontend) Run(ctx context.Context, opts registry.Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	source, err := LoadFont(opts.FontPath)
	if err != nil {
		return err
	}

	g := runner.New(opts.Config,
		runner.WithSeed(opts.Runtime.Seed),
		runner.WithLogger(logger),
	)
	app := NewApp(ctx, g, source, opts.Runtime.TickRate, logger)

	ebiten.SetWindowSize(opts.Config.Window.Width, opts.Config.Window.Height)
	ebiten.SetWindowTitle(opts.Config.Window.Title)
	ebiten.SetTPS(app.tps)

	logger.Info("opening window", "width", opts.Config.Window.Width, "height", opts.Config.Window.Height)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func init() {
	registry.Register("window", func() registry.Frontend {
		return Frontend{}
	})
}
