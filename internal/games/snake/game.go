// Package snake implements the snake simulation and its registry adapter.
//
// The simulation itself lives in Session: a pure function of elapsed time
// and input, with every random draw taken from an injected generator.
// Game wraps a Session so the platform host can drive and draw it.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Game adapts a Session to the registry.Game interface.
type Game struct {
	cfg     config.SnakeConfig
	session *Session
	last    Snapshot
}

// New creates a game using the built-in configuration.
func New() *Game {
	return NewWithConfig(config.DefaultSnakeConfig())
}

// NewWithConfig creates a game with the given configuration.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// Configure replaces the configuration used by the next Reset.
func (g *Game) Configure(cfg config.SnakeConfig) {
	g.cfg = cfg
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset creates a fresh session seeded from the runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.session = NewSession(g.cfg, rand.New(rand.NewSource(cfg.Seed)))
	g.last = g.session.Snapshot()
}

// Step feeds one frame of input and elapsed time to the session.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	g.last = g.session.Tick(dt, InputFromFrame(in))
	return core.StepResult{
		State:  g.State(),
		Events: g.last.Events.Names(),
	}
}

// InputFromFrame converts platform actions to session input.
// Only the most recent direction of the frame is kept.
func InputFromFrame(in core.InputFrame) Input {
	var out Input
	switch in.LastDirection {
	case core.ActionUp:
		out.Direction, out.HasDirection = DirUp, true
	case core.ActionDown:
		out.Direction, out.HasDirection = DirDown, true
	case core.ActionLeft:
		out.Direction, out.HasDirection = DirLeft, true
	case core.ActionRight:
		out.Direction, out.HasDirection = DirRight, true
	}
	out.NewGame = in.Has(core.ActionNewGame)
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.last.Score,
		GameOver: g.last.GameOver(),
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	return g.last.DebugString()
}
