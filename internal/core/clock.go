package core

import "time"

// FrameClock turns the wall-clock timestamps of successive frames into
// deltas in seconds. The first frame after creation or Pause yields 0.
type FrameClock struct {
	last    time.Time
	started bool
}

// NewFrameClock creates a clock that has not seen a frame yet.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Tick records a frame at t and returns the seconds elapsed since the previous
// frame. Timestamps going backwards yield 0.
func (c *FrameClock) Tick(t time.Time) float64 {
	if !c.started {
		c.last = t
		c.started = true
		return 0
	}
	delta := t.Sub(c.last).Seconds()
	c.last = t
	if delta < 0 {
		return 0
	}
	return delta
}

// Pause forgets the previous frame, so time spent until the next Tick is not
// reported as a delta.
func (c *FrameClock) Pause() {
	c.started = false
}

// FPSCounter counts frames over a rolling one-second window.
type FPSCounter struct {
	timer  float64
	frames int
	fps    float64
}

// Frame registers one frame that took delta seconds.
func (f *FPSCounter) Frame(delta float64) {
	f.timer += delta
	f.frames++
	if f.timer > 1.0 {
		f.fps = float64(f.frames)
		f.timer -= 1.0
		f.frames = 0
	}
}

// FPS returns the frame count of the last completed window.
func (f *FPSCounter) FPS() float64 {
	return f.fps
}
