package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Input is the per-tick input to a session.
type Input struct {
	Direction    Direction
	HasDirection bool
	NewGame      bool
}

// Session owns one game: the snake, the food, the hazard, the score and
// the world clock. It is driven by Tick and has no notion of wall time.
type Session struct {
	cfg   config.SnakeConfig
	field Field
	curve SpeedCurve
	rng   *rand.Rand

	snake     *Snake
	food      Food
	hazard    Hazard
	score     int
	worldTime float64
	state     State
	events    Event
}

// NewSession creates a session ready to play. All random placement is
// drawn from rng, so equal seeds give equal games.
func NewSession(cfg config.SnakeConfig, rng *rand.Rand) *Session {
	s := &Session{
		cfg:   cfg,
		field: NewField(cfg.Field),
		curve: NewSpeedCurve(cfg),
		rng:   rng,
	}
	s.Reset()
	return s
}

// Reset starts a new game from any state.
func (s *Session) Reset() {
	s.snake = NewSnake(s.field, s.cfg.Snake, s.curve, s.field.Center(), DirRight)
	s.food = SpawnFood(s.field, s.rng)
	s.hazard = NewHazard(s.cfg.Hazard)
	s.hazard.Spawn(s.field, s.rng)
	s.score = 0
	s.worldTime = 0
	s.state = StatePlaying
}

// Tick advances the session by delta seconds with the given input.
func (s *Session) Tick(delta float64, in Input) Snapshot {
	s.events = 0

	if in.NewGame {
		s.Reset()
		s.events |= EventNewGame
		return s.Snapshot()
	}

	if in.HasDirection {
		s.snake.SetHeading(in.Direction)
	}

	if s.state == StateGameOver {
		return s.Snapshot()
	}

	if s.snake.HasSelfCollision() {
		s.endGame()
		return s.Snapshot()
	}

	delta = max(0, delta)
	s.worldTime += delta
	if s.snake.Advance(delta, s.worldTime) {
		s.events |= EventMoved
	}

	if s.snake.HasSelfCollision() {
		s.endGame()
		return s.Snapshot()
	}

	head := s.snake.Head()
	if s.food.Eaten(head) {
		s.snake.Grow()
		s.food = SpawnFood(s.field, s.rng)
		s.score++
		s.events |= EventAteFood
	}

	if s.hazard.Eaten(head) {
		s.hazard.Apply(s.snake)
		s.hazard.Deactivate(s.rng)
		s.score++
		s.events |= EventAteHazard
	}

	s.events |= s.hazard.Tick(delta, s.field, s.rng)

	return s.Snapshot()
}

func (s *Session) endGame() {
	s.state = StateGameOver
	s.events |= EventGameOver
}

// Snapshot returns the current state without advancing it.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:    s.state,
		Segments: s.snake.Segments(),
		Heading:  s.snake.Heading(),
		Length:   s.snake.Length(),
		Food:     s.food.Position,
		Hazard: HazardView{
			Position:     s.hazard.Position,
			Active:       s.hazard.Active,
			Effect:       s.hazard.Effect,
			Remaining:    s.hazard.Remaining,
			Progress:     s.hazard.Progress(),
			RespawnDelay: s.hazard.RespawnDelay,
		},
		Score:         s.score,
		WorldTime:     s.worldTime,
		StepInterval:  s.snake.StepInterval(),
		SlowFactor:    s.snake.SlowFactor(),
		SlowRemaining: s.snake.SlowRemaining(),
		Events:        s.events,
	}
}

// Field returns the play-field geometry.
func (s *Session) Field() Field {
	return s.field
}

// State returns the session state.
func (s *Session) State() State {
	return s.state
}
