package snake

import (
	"fmt"
	"strings"
)

// State is the session state.
type State string

const (
	StatePlaying  State = "playing"
	StateGameOver State = "game_over"
)

// Event flags what happened during a single tick.
type Event uint8

const (
	EventNewGame Event = 1 << iota
	EventMoved
	EventAteFood
	EventAteHazard
	EventHazardExpired
	EventHazardSpawned
	EventGameOver
)

var eventNames = []struct {
	ev   Event
	name string
}{
	{EventNewGame, "new_game"},
	{EventMoved, "moved"},
	{EventAteFood, "ate_food"},
	{EventAteHazard, "ate_hazard"},
	{EventHazardExpired, "hazard_expired"},
	{EventHazardSpawned, "hazard_spawned"},
	{EventGameOver, "game_over"},
}

// Has reports whether all flags in x are set.
func (e Event) Has(x Event) bool {
	return e&x == x
}

// Names lists the set flags, skipping EventMoved.
func (e Event) Names() []string {
	var names []string
	for _, n := range eventNames {
		if n.ev != EventMoved && e.Has(n.ev) {
			names = append(names, n.name)
		}
	}
	return names
}

func (e Event) String() string {
	return strings.Join(e.Names(), ",")
}

// HazardView is the read-only hazard state exposed to renderers.
type HazardView struct {
	Position     Cell
	Active       bool
	Effect       Effect
	Remaining    float64
	Progress     float64 // Remaining fraction of the active duration
	RespawnDelay float64
}

// Snapshot is a read-only view of the session after a tick.
type Snapshot struct {
	State         State
	Segments      []Cell // Head first
	Heading       Direction
	Length        int // Target length; Segments catch up on the next step
	Food          Cell
	Hazard        HazardView
	Score         int
	WorldTime     float64
	StepInterval  float64
	SlowFactor    float64
	SlowRemaining float64
	Events        Event
}

// Head returns the head cell.
func (s Snapshot) Head() Cell {
	if len(s.Segments) == 0 {
		return Cell{}
	}
	return s.Segments[0]
}

// GameOver reports whether the session has ended.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// DebugString describes the snapshot on a few lines for debug logs.
func (s Snapshot) DebugString() string {
	head := s.Head()
	var b strings.Builder
	fmt.Fprintf(&b, "State: %s, Score: %d, Time: %.2f\n", s.State, s.Score, s.WorldTime)
	fmt.Fprintf(&b, "Snake len: %d/%d, Heading: %s, Interval: %.3f\n", len(s.Segments), s.Length, s.Heading, s.StepInterval)
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", head.X, head.Y, s.Food.X, s.Food.Y)
	if s.Hazard.Active {
		fmt.Fprintf(&b, "Hazard: %s at (%d, %d), %.2fs left\n", s.Hazard.Effect, s.Hazard.Position.X, s.Hazard.Position.Y, s.Hazard.Remaining)
	} else {
		fmt.Fprintf(&b, "Hazard: respawn in %.2fs\n", s.Hazard.RespawnDelay)
	}
	if s.SlowFactor != 1 {
		fmt.Fprintf(&b, "Slowdown: x%.2f, %.2fs left\n", s.SlowFactor, s.SlowRemaining)
	}
	return b.String()
}
