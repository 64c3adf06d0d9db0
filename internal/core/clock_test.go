package core

import (
	"testing"
	"time"
)

func TestFrameClockDeltas(t *testing.T) {
	c := NewFrameClock()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if d := c.Tick(base); d != 0 {
		t.Errorf("first Tick() = %f, expected 0", d)
	}
	if d := c.Tick(base.Add(250 * time.Millisecond)); d != 0.25 {
		t.Errorf("Tick() = %f, expected 0.25", d)
	}
	if d := c.Tick(base.Add(100 * time.Millisecond)); d != 0 {
		t.Errorf("Tick() going backwards = %f, expected 0", d)
	}
}

func TestFrameClockPause(t *testing.T) {
	c := NewFrameClock()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.Tick(base)
	c.Pause()

	// A long game-over pause must not leak into the next delta
	if d := c.Tick(base.Add(time.Minute)); d != 0 {
		t.Errorf("Tick() after Pause = %f, expected 0", d)
	}
	if d := c.Tick(base.Add(time.Minute + 500*time.Millisecond)); d != 0.5 {
		t.Errorf("Tick() = %f, expected 0.5", d)
	}
}

func TestFPSCounter(t *testing.T) {
	var f FPSCounter
	if f.FPS() != 0 {
		t.Errorf("FPS() = %f before first window, expected 0", f.FPS())
	}

	for range 4 {
		f.Frame(0.25)
	}
	// Exactly one second is not past the window yet
	if f.FPS() != 0 {
		t.Errorf("FPS() = %f before window completes, expected 0", f.FPS())
	}

	f.Frame(0.25)
	if f.FPS() != 5 {
		t.Errorf("FPS() = %f, expected 5", f.FPS())
	}
}
