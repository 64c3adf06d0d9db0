package core

import "testing"

func TestInputFrameLastDirectionWins(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNewGame)
	f.Set(ActionLeft)

	if f.LastDirection != ActionLeft {
		t.Errorf("LastDirection = %v, expected Left", f.LastDirection)
	}
	if !f.Has(ActionUp) || !f.Has(ActionNewGame) {
		t.Error("frame should remember every action set this frame")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDown)
	f.Clear()

	if f.Has(ActionDown) {
		t.Error("Clear() should remove actions")
	}
	if f.LastDirection != ActionNone {
		t.Errorf("LastDirection = %v after Clear, expected None", f.LastDirection)
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate the map")
	}
}

func TestActionIsDirection(t *testing.T) {
	for _, a := range []Action{ActionUp, ActionDown, ActionLeft, ActionRight} {
		if !a.IsDirection() {
			t.Errorf("%v should be a direction", a)
		}
	}
	for _, a := range []Action{ActionNone, ActionNewGame, ActionQuit} {
		if a.IsDirection() {
			t.Errorf("%v should not be a direction", a)
		}
	}
}
