package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagSimSeconds   float64
	flagSimDT        float64
	flagSimTurnEvery int
)

// steerDirections are the headings the steering script picks from.
var steerDirections = []snake.Direction{snake.DirUp, snake.DirDown, snake.DirLeft, snake.DirRight}

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Runs a session without a terminal UI. A pseudo-random steering
script derived from --seed turns the snake every --turn-every ticks.
The run stops at game over or after --seconds of simulated time, then
prints the final state. Equal seeds always print equal results.

Examples:
  snake sim --seed 42
  snake sim --seed 7 --seconds 300 --dt 0.016 --turn-every 20 --debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 60, "Simulated time to run")
	simCmd.Flags().Float64Var(&flagSimDT, "dt", 1.0/60, "Seconds per tick")
	simCmd.Flags().IntVar(&flagSimTurnEvery, "turn-every", 15, "Ticks between steering inputs (0 = never steer)")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(cmd *cobra.Command, args []string) error {
	if flagSimDT <= 0 || flagSimSeconds <= 0 {
		return fmt.Errorf("sim: --dt and --seconds must be positive")
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, src, err := loadConfig(logger)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("simulation started", "seed", seed, "config", src, "seconds", flagSimSeconds, "dt", flagSimDT)

	session := snake.NewSession(cfg, rand.New(rand.NewSource(seed)))
	steer := rand.New(rand.NewSource(seed + 1))

	ticks := int(flagSimSeconds / flagSimDT)
	snap := session.Snapshot()
	for i := range ticks {
		var in snake.Input
		if flagSimTurnEvery > 0 && i%flagSimTurnEvery == 0 {
			in = snake.Input{Direction: steerDirections[steer.Intn(len(steerDirections))], HasDirection: true}
		}
		snap = session.Tick(flagSimDT, in)
		if names := snap.Events.Names(); len(names) > 0 {
			logger.Debug("event", "tick", i, "events", names, "score", snap.Score, "length", snap.Length)
		}
		if snap.GameOver() {
			logger.Info("game over", "score", snap.Score, "time", snap.WorldTime, "length", snap.Length)
			logger.Debug("final state", "state", snap.DebugString())
			break
		}
	}

	printSnapshot(cmd, seed, snap)
	return nil
}

func printSnapshot(cmd *cobra.Command, seed int64, s snake.Snapshot) {
	out := cmd.OutOrStdout()
	head := s.Head()
	fmt.Fprintf(out, "seed:      %d\n", seed)
	fmt.Fprintf(out, "state:     %s\n", s.State)
	fmt.Fprintf(out, "time:      %.2f s\n", s.WorldTime)
	fmt.Fprintf(out, "score:     %d\n", s.Score)
	fmt.Fprintf(out, "length:    %d\n", s.Length)
	fmt.Fprintf(out, "head:      (%d, %d) %s\n", head.X, head.Y, s.Heading)
	fmt.Fprintf(out, "food:      (%d, %d)\n", s.Food.X, s.Food.Y)
	if s.Hazard.Active {
		fmt.Fprintf(out, "hazard:    %s at (%d, %d), %.2f s left\n", s.Hazard.Effect, s.Hazard.Position.X, s.Hazard.Position.Y, s.Hazard.Remaining)
	} else {
		fmt.Fprintf(out, "hazard:    respawn in %.2f s\n", s.Hazard.RespawnDelay)
	}
	fmt.Fprintf(out, "interval:  %.3f s\n", s.StepInterval)
}
