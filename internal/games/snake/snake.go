package snake

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// SpeedCurve maps world time to the base step interval.
type SpeedCurve struct {
	Base    float64 // Interval at world time 0
	Every   float64 // Seconds per milestone
	Factor  float64 // Fraction of Base removed per milestone
	Min     float64
	Enabled bool
}

// NewSpeedCurve builds the curve from the configuration, with the
// difficulty level already folded into the base interval.
func NewSpeedCurve(cfg config.SnakeConfig) SpeedCurve {
	return SpeedCurve{
		Base:    cfg.BaseInterval(),
		Every:   cfg.Snake.SpeedupEvery,
		Factor:  cfg.Snake.SpeedupFactor,
		Min:     cfg.Snake.MinInterval,
		Enabled: cfg.Difficulty.Enabled,
	}
}

// Interval returns the step interval at the given world time.
func (c SpeedCurve) Interval(worldTime float64) float64 {
	if !c.Enabled || worldTime <= c.Every {
		return c.Base
	}
	milestones := math.Floor(worldTime / c.Every)
	return math.Max(c.Min, c.Base-c.Factor*c.Base*milestones)
}

// Snake is the player's body. Segments are ordered head first.
type Snake struct {
	field     Field
	curve     SpeedCurve
	segments  []Cell
	length    int // Target length; segments catch up as the snake moves
	maxLength int
	heading   Direction

	moveTimer    float64
	stepInterval float64

	slowFactor    float64
	slowRemaining float64
}

// NewSnake places a snake with its head at head, facing heading, with the
// rest of the body laid out behind it.
func NewSnake(field Field, params config.SnakeParams, curve SpeedCurve, head Cell, heading Direction) *Snake {
	s := &Snake{
		field:        field,
		curve:        curve,
		length:       params.InitialLength,
		maxLength:    params.MaxLength,
		heading:      heading,
		stepInterval: curve.Base,
		slowFactor:   1,
	}
	s.segments = append(s.segments, head)
	behind := heading.Opposite()
	for tail := head; len(s.segments) < s.length; {
		if !field.CanStep(tail, behind) {
			// Remaining segments grow out as the snake moves.
			break
		}
		tail = field.Step(tail, behind)
		s.segments = append(s.segments, tail)
	}
	return s
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.segments[0]
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Cell {
	return slices.Clone(s.segments)
}

// Length returns the target length of the snake.
func (s *Snake) Length() int {
	return s.length
}

// Heading returns the current movement direction.
func (s *Snake) Heading() Direction {
	return s.heading
}

// StepInterval returns the interval used by the last Advance call.
func (s *Snake) StepInterval() float64 {
	return s.stepInterval
}

// SlowFactor returns the active slowdown multiplier (1 when none).
func (s *Snake) SlowFactor() float64 {
	return s.slowFactor
}

// SlowRemaining returns the seconds left on the active slowdown.
func (s *Snake) SlowRemaining() float64 {
	return s.slowRemaining
}

// SetHeading changes the heading unless d is the exact reverse of the
// current one. Reports whether the heading was accepted.
func (s *Snake) SetHeading(d Direction) bool {
	if d == s.heading.Opposite() {
		return false
	}
	s.heading = d
	return true
}

// CanAdvance reports whether one step in direction d keeps the head on the field.
func (s *Snake) CanAdvance(d Direction) bool {
	return s.field.CanStep(s.Head(), d)
}

// turnOrder lists the perpendicular headings tried when the current one
// is blocked, in priority order.
var turnOrder = map[Direction][2]Direction{
	DirUp:    {DirRight, DirLeft},
	DirDown:  {DirLeft, DirRight},
	DirLeft:  {DirDown, DirUp},
	DirRight: {DirUp, DirDown},
}

// AutoTurn switches to the first free perpendicular heading.
// Returns false if the snake is stuck.
func (s *Snake) AutoTurn() bool {
	for _, d := range turnOrder[s.heading] {
		if s.CanAdvance(d) {
			s.heading = d
			return true
		}
	}
	return false
}

// Advance accumulates delta and moves the head one cell once the step
// interval has elapsed. Reports whether the snake moved.
func (s *Snake) Advance(delta, worldTime float64) bool {
	if s.slowRemaining > 0 {
		s.slowRemaining -= delta
		if s.slowRemaining <= 0 {
			s.slowRemaining = 0
			s.slowFactor = 1
		}
	}

	s.stepInterval = s.curve.Interval(worldTime) * s.slowFactor
	s.moveTimer += delta
	if s.moveTimer < s.stepInterval {
		return false
	}
	s.moveTimer = 0

	if !s.CanAdvance(s.heading) && !s.AutoTurn() {
		return false
	}

	s.segments = slices.Insert(s.segments, 0, s.field.Step(s.Head(), s.heading))
	if len(s.segments) > s.length {
		s.segments = s.segments[:s.length]
	}
	return true
}

// Grow raises the target length by one, capped at the maximum.
// The new segment appears at the tail on the following moves.
func (s *Snake) Grow() {
	if s.length < s.maxLength {
		s.length++
	}
}

// Shrink removes n segments from the tail, never going below one.
func (s *Snake) Shrink(n int) {
	s.length = max(1, s.length-n)
	if len(s.segments) > s.length {
		s.segments = s.segments[:s.length]
	}
}

// Slow multiplies the step interval by factor for duration seconds.
// A zero duration keeps the slowdown until the next game.
func (s *Snake) Slow(factor, duration float64) {
	s.slowFactor *= factor
	s.slowRemaining = duration
}

// HasSelfCollision reports whether the head overlaps any other segment.
func (s *Snake) HasSelfCollision() bool {
	head := s.Head()
	return slices.Contains(s.segments[1:], head)
}
