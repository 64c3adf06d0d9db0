package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the game",
	Long: `Start playing in the terminal. The game defaults to snake.

Controls:
  Arrows/WASD  - Turn
  N            - New game
  Esc/Q        - Quit

Difficulty options:
  easy   - Base speed, speeds up every 30 seconds
  normal - Starts 30% faster, speeds up every 30 seconds
  hard   - Starts 70% faster, speeds up every 30 seconds
  fixed  - Base speed, never speeds up

Examples:
  snake play
  snake play --difficulty hard
  snake play --config ./my-snake.yaml --log-file snake.log --debug`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadConfig loads the game configuration and applies --difficulty.
// Config files skipped on the search path are logged as warnings.
func loadConfig(logger *log.Logger) (config.SnakeConfig, config.Source, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SnakeConfig{}, "", err
	}
	cfg, src, skipped, err := config.LoadSnakeReport(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, "", err
	}
	for _, sk := range skipped {
		logger.Warn("config file ignored", "path", sk.Path, "err", sk.Err)
	}
	config.ApplySnakePreset(&cfg, preset)
	return cfg, src, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := "snake"
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'snake list' to see available games)", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game %q: %w", gameID, err)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	gameCfg, src, err := loadConfig(logger)
	if err != nil {
		return err
	}
	if g, ok := game.(*snake.Game); ok {
		g.Configure(gameCfg)
	}
	logger.Info("config loaded", "source", src, "difficulty", flagDifficulty)

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	} else {
		logger.Warn("terminal size unavailable, using default", "err", termErr, "width", cfg.ScreenW, "height", cfg.ScreenH)
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
