package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Effect is what eating the hazard point does to the snake.
type Effect int

const (
	EffectShorten Effect = iota
	EffectSlowdown
)

func (e Effect) String() string {
	switch e {
	case EffectShorten:
		return "shorten"
	case EffectSlowdown:
		return "slowdown"
	default:
		return "unknown"
	}
}

// Hazard is the timed red point. While active it expires after a fixed
// duration; while inactive it counts down a random respawn delay.
type Hazard struct {
	params config.HazardParams

	Position     Cell
	Active       bool
	Effect       Effect
	Remaining    float64 // Seconds left while active
	RespawnDelay float64 // Seconds until respawn while inactive
}

// NewHazard returns an inactive hazard with no pending respawn.
func NewHazard(params config.HazardParams) Hazard {
	return Hazard{params: params}
}

// Spawn activates the hazard on a random cell with a random effect.
func (h *Hazard) Spawn(field Field, rng *rand.Rand) {
	h.Position = field.RandomCell(rng)
	h.Effect = Effect(rng.Intn(2))
	h.Active = true
	h.Remaining = h.params.Duration
	h.RespawnDelay = 0
}

// Deactivate hides the hazard and draws a whole-second respawn delay.
func (h *Hazard) Deactivate(rng *rand.Rand) {
	h.Active = false
	h.Remaining = 0
	h.RespawnDelay = float64(h.params.RespawnMin + rng.Intn(h.params.RespawnMax-h.params.RespawnMin+1))
}

// Tick advances the active timer or the respawn countdown.
// Returns EventHazardExpired or EventHazardSpawned when the hazard
// changed state, zero otherwise.
func (h *Hazard) Tick(delta float64, field Field, rng *rand.Rand) Event {
	if h.Active {
		h.Remaining -= delta
		if h.Remaining <= 0 {
			h.Deactivate(rng)
			return EventHazardExpired
		}
		return 0
	}

	h.RespawnDelay -= delta
	if h.RespawnDelay <= 0 {
		h.Spawn(field, rng)
		return EventHazardSpawned
	}
	return 0
}

// Eaten reports whether an active hazard sits under the head.
func (h *Hazard) Eaten(head Cell) bool {
	return h.Active && h.Position == head
}

// Apply runs the hazard effect on the snake.
func (h *Hazard) Apply(s *Snake) {
	switch h.Effect {
	case EffectShorten:
		s.Shrink(h.params.ShortenAmount)
	case EffectSlowdown:
		s.Slow(h.params.SlowdownFactor, h.params.SlowdownDuration)
	}
}

// Progress returns the fraction of the active duration still left, in [0, 1].
func (h *Hazard) Progress() float64 {
	if !h.Active || h.params.Duration <= 0 {
		return 0
	}
	return core.ClampF(h.Remaining/h.params.Duration, 0, 1)
}
