package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/core"
	"github.com/vovakirdan/dino-runner/internal/runner"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a runner session.
type Model struct {
	game       *runner.Game
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *runner.Game, cfg core.RuntimeConfig, logger *log.Logger) *Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	keys := DefaultKeyMap()
	keys.setRestartEnabled(false)

	return &Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		keys:       keys,
		help:       help.New(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records the action for the next frame.
// Input is sampled once per tick, matching a frame-polled keyboard.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit requested", "score", m.game.Score())
		return m, tea.Quit
	case core.ActionNone:
		return m, nil
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleResize keeps the world scaled to the terminal. The last row is
// reserved for the help line.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by one frame.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.keys.setRestartEnabled(m.game.Phase() == runner.PhaseGameOver)
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	DrawSnapshot(m.screen, m.game.Snapshot())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}
