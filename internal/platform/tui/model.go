package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// helpHeight is the number of rows reserved below the game screen.
const helpHeight = 1

// stateDumper is implemented by games that can describe their state.
type stateDumper interface {
	DebugState() string
}

// Model is the Bubble Tea model that hosts a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	clock      *core.FrameClock
	fps        *core.FPSCounter
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-helpHeight)),
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		logger:     logger,
		clock:      core.NewFrameClock(),
		fps:        &core.FPSCounter{},
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the key in the pending input frame.
// Every key pressed since the last tick is applied on that tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}
	return m, nil
}

// handleResize resizes the screen buffer. The session itself is not
// affected since the play-field has a fixed size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-helpHeight))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick measures elapsed time and steps the game.
// While the game is over the clock is held, so no time accumulates until
// a new game is requested.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	delta := m.clock.Tick(now)

	if m.gameState.GameOver && !m.inputFrame.Has(core.ActionNewGame) {
		m.clock.Pause()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.fps.Frame(delta)
	prev := m.gameState
	result := m.game.Step(m.inputFrame, delta)
	m.gameState = result.State

	for _, ev := range result.Events {
		m.logger.Debug("event", "name", ev, "score", m.gameState.Score)
	}
	if m.gameState.GameOver && !prev.GameOver {
		m.logger.Info("game over", "score", m.gameState.Score)
		m.logState("final state")
	}
	if m.inputFrame.Has(core.ActionNewGame) {
		m.logger.Info("new game", "previous_score", prev.Score)
		m.logState("new state")
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// logState writes the game's own state description at debug level.
func (m Model) logState(msg string) {
	if d, ok := m.game.(stateDumper); ok {
		m.logger.Debug(msg, "state", d.DebugState())
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen, core.FrameStats{FPS: m.fps.FPS()})
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys())
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
