package snake

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func newTestHazard(t *testing.T, rng *rand.Rand) Hazard {
	t.Helper()
	h := NewHazard(config.DefaultSnakeConfig().Hazard)
	h.Spawn(testField(), rng)
	return h
}

func TestHazardSpawn(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	h := newTestHazard(t, rng)

	if !h.Active {
		t.Error("Active = false after Spawn")
	}
	if h.Remaining != 5 {
		t.Errorf("Remaining = %g, expected 5", h.Remaining)
	}
	if h.Progress() != 1 {
		t.Errorf("Progress() = %g, expected 1", h.Progress())
	}
	if !onField(testField(), h.Position) {
		t.Errorf("Position = %v outside the field", h.Position)
	}
}

func TestHazardExpiresAtZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	h := newTestHazard(t, rng)

	if ev := h.Tick(2.5, testField(), rng); ev != 0 {
		t.Errorf("Tick(2.5) = %v, expected no event", ev)
	}
	if h.Progress() != 0.5 {
		t.Errorf("Progress() = %g, expected 0.5", h.Progress())
	}
	if ev := h.Tick(2.5, testField(), rng); ev != EventHazardExpired {
		t.Errorf("Tick(2.5) = %v, expected hazard_expired", ev)
	}
	if h.Active {
		t.Error("hazard still active with zero time left")
	}
	if h.RespawnDelay < 3 || h.RespawnDelay > 9 {
		t.Errorf("RespawnDelay = %g, expected within [3, 9]", h.RespawnDelay)
	}
}

func TestHazardRespawns(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	h := newTestHazard(t, rng)
	h.Deactivate(rng)
	delay := h.RespawnDelay

	if ev := h.Tick(delay-0.5, testField(), rng); ev != 0 || h.Active {
		t.Errorf("hazard respawned early: event %v, active %v", ev, h.Active)
	}
	if ev := h.Tick(0.5, testField(), rng); ev != EventHazardSpawned {
		t.Errorf("Tick() = %v, expected hazard_spawned", ev)
	}
	if !h.Active || h.Remaining != 5 {
		t.Errorf("after respawn: active %v, remaining %g", h.Active, h.Remaining)
	}
}

func TestHazardRespawnDelayRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	h := newTestHazard(t, rng)
	seen := make(map[float64]bool)
	for range 1000 {
		h.Deactivate(rng)
		d := h.RespawnDelay
		if d < 3 || d > 9 || d != float64(int(d)) {
			t.Fatalf("RespawnDelay = %g, expected whole seconds in [3, 9]", d)
		}
		seen[d] = true
	}
	if len(seen) != 7 {
		t.Errorf("saw %d distinct delays, expected 7", len(seen))
	}
}

func TestHazardEatenOnlyWhenActive(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	h := newTestHazard(t, rng)
	pos := h.Position

	if !h.Eaten(pos) {
		t.Error("Eaten() = false on the hazard cell")
	}
	h.Deactivate(rng)
	if h.Eaten(pos) {
		t.Error("Eaten() = true for an inactive hazard")
	}
}

func TestHazardApply(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	h := newTestHazard(t, rng)

	s := newTestSnake(Cell{240, 240}, DirRight)
	h.Effect = EffectShorten
	h.Apply(s)
	if s.Length() != 3 {
		t.Errorf("shorten: Length() = %d, expected 3", s.Length())
	}

	h.Effect = EffectSlowdown
	h.Apply(s)
	if s.SlowFactor() != 1.5 || s.SlowRemaining() != 5 {
		t.Errorf("slowdown: factor %g, remaining %g", s.SlowFactor(), s.SlowRemaining())
	}
}
