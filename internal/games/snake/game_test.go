package snake

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60, Seed: seed})
	return g
}

func TestRegistered(t *testing.T) {
	if !registry.Exists("snake") {
		t.Fatal("snake is not registered")
	}
	g, err := registry.Create("snake")
	if err != nil {
		t.Fatalf("Create(snake) error: %v", err)
	}
	if g.Title() != "Snake" {
		t.Errorf("Title() = %q, expected Snake", g.Title())
	}
}

func TestInputFromFrame(t *testing.T) {
	frame := core.NewInputFrame()
	frame.Set(core.ActionUp)
	frame.Set(core.ActionLeft)
	frame.Set(core.ActionNewGame)

	in := InputFromFrame(frame)
	if !in.HasDirection || in.Direction != DirLeft {
		t.Errorf("direction = %s (%v), expected last pressed left", in.Direction, in.HasDirection)
	}
	if !in.NewGame {
		t.Error("NewGame = false, expected true")
	}

	if in := InputFromFrame(core.NewInputFrame()); in.HasDirection || in.NewGame {
		t.Errorf("empty frame produced %+v", in)
	}
}

func TestStepReportsState(t *testing.T) {
	g := newTestGame(1)
	frame := core.NewInputFrame()
	frame.Set(core.ActionUp)

	res := g.Step(frame, 0.1)
	if res.State.GameOver {
		t.Error("GameOver after first step")
	}
	if g.last.Heading != DirUp {
		t.Errorf("Heading = %s, expected up", g.last.Heading)
	}
	if g.last.Head() != (Cell{240, 220}) {
		t.Errorf("Head() = %v, expected {240 220}", g.last.Head())
	}
}

func TestGameDeterministic(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(5)
		for i := range 600 {
			frame := core.NewInputFrame()
			if i%40 == 0 {
				frame.Set([]core.Action{core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight}[i/40%4])
			}
			g.Step(frame, 1.0/60)
		}
		return g.last
	}
	if a, b := run(), run(); !reflect.DeepEqual(a, b) {
		t.Error("equal seeds diverged")
	}
}

func TestRenderPanel(t *testing.T) {
	g := newTestGame(1)
	scr := core.NewScreen(80, 30)
	g.Render(scr, core.FrameStats{FPS: 60})
	out := scr.String()

	for _, want := range []string{"Time: 0.0 s", "FPS: 60", "Controls:", "Esc - Exit", "N - New Game", "Score: 0", "Red Dot Timer:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
	if strings.Contains(out, "Game Over!") {
		t.Error("Render() shows game over while playing")
	}
}

func TestRenderSnakeCells(t *testing.T) {
	g := newTestGame(1)
	g.session.food.Position = Cell{0, 0}
	g.session.hazard.Active = false
	g.last = g.session.Snapshot()

	scr := core.NewScreen(80, 30)
	g.Render(scr, core.FrameStats{})
	lay, _, _, ok := computeLayout(g.session.Field(), 80, 30)
	if !ok {
		t.Fatal("layout does not fit 80x30")
	}

	if lay.scale != fullScale {
		t.Fatalf("scale = %+v, expected full scale at 80x30", lay.scale)
	}

	// Head at column 12, row 12.
	x := lay.board.X + 1 + 12*lay.scale.cols
	y := lay.board.Y + 1 + 12
	if c := scr.GetCell(x, y); c.Rune != '█' || c.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %q/%v, expected bright green block", c.Rune, c.Color)
	}
	if c := scr.GetCell(lay.board.X+1, lay.board.Y+1); c.Color != core.ColorBlue {
		t.Errorf("food cell color = %v, expected blue", c.Color)
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(1)
	clearBoard(g.session)
	coil(g.session)
	g.Step(core.NewInputFrame(), 0.1)
	if !g.State().GameOver {
		t.Fatal("expected game over")
	}

	scr := core.NewScreen(80, 30)
	g.Render(scr, core.FrameStats{})
	out := scr.String()
	if !strings.Contains(out, "Game Over!") || !strings.Contains(out, "N to start a new game") {
		t.Errorf("Render() missing game over overlay:\n%s", out)
	}
}

func TestRenderCompactFitsStandardTerminal(t *testing.T) {
	g := newTestGame(1)
	g.session.food.Position = Cell{0, 0}
	g.session.hazard.Active = false
	g.last = g.session.Snapshot()

	// 80x24 terminal minus the help line.
	scr := core.NewScreen(80, 23)
	g.Render(scr, core.FrameStats{FPS: 60})
	out := scr.String()
	if strings.Contains(out, "Window too small") {
		t.Fatalf("Render() at 80x23 reports a small window:\n%s", out)
	}
	for _, want := range []string{"Score: 0", "Red Dot Timer:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q", want)
		}
	}

	lay, _, _, ok := computeLayout(g.session.Field(), 80, 23)
	if !ok || lay.scale != compactScale {
		t.Fatalf("layout = %+v (fits %v), expected compact scale", lay, ok)
	}
	if lay.board.H != 14 {
		t.Errorf("board height = %d, expected 14", lay.board.H)
	}

	// Head at column 12, row 12: upper half of line 6.
	head := scr.GetCell(lay.board.X+1+12, lay.board.Y+1+6)
	if head.Rune != '▀' || head.Color != core.ColorBrightGreen || head.Bg != core.ColorDefault {
		t.Errorf("head cell = %+v, expected bright green upper half", head)
	}
	// Body segment left of the head shares the line.
	if body := scr.GetCell(lay.board.X+1+11, lay.board.Y+1+6); body.Color != core.ColorGreen {
		t.Errorf("body cell = %+v, expected green", body)
	}
	if food := scr.GetCell(lay.board.X+1, lay.board.Y+1); food.Rune != '▀' || food.Color != core.ColorBlue {
		t.Errorf("food cell = %+v, expected blue upper half", food)
	}
}

func TestHalfBlock(t *testing.T) {
	tests := []struct {
		upper, lower core.Color
		want         core.Cell
	}{
		{core.ColorGreen, core.ColorBlue, core.Cell{Rune: '▀', Color: core.ColorGreen, Bg: core.ColorBlue}},
		{core.ColorGreen, core.ColorDefault, core.Cell{Rune: '▀', Color: core.ColorGreen}},
		{core.ColorDefault, core.ColorRed, core.Cell{Rune: '▄', Color: core.ColorRed}},
		{core.ColorDefault, core.ColorDefault, core.Cell{Rune: '▄'}},
	}
	for _, tt := range tests {
		if got := halfBlock(tt.upper, tt.lower); got != tt.want {
			t.Errorf("halfBlock(%v, %v) = %+v, expected %+v", tt.upper, tt.lower, got, tt.want)
		}
	}
}

func TestRenderGameOverCompact(t *testing.T) {
	g := newTestGame(1)
	clearBoard(g.session)
	coil(g.session)
	g.Step(core.NewInputFrame(), 0.1)

	scr := core.NewScreen(80, 23)
	g.Render(scr, core.FrameStats{})
	out := scr.String()
	if !strings.Contains(out, "Game Over!") || !strings.Contains(out, "Press Esc to quit") {
		t.Errorf("Render() missing game over overlay:\n%s", out)
	}
}

func TestWrapWords(t *testing.T) {
	got := wrapWords(gameOverHint, 20)
	want := []string{"Press Esc to quit or", "N to start a new", "game."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wrapWords() = %q, expected %q", got, want)
	}
	if got := wrapWords(gameOverHint, 80); len(got) != 1 {
		t.Errorf("wrapWords() wide = %q, expected one line", got)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(1)
	scr := core.NewScreen(40, 10)
	g.Render(scr, core.FrameStats{})
	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("Render() should report a small window")
	}
}

func TestDebugState(t *testing.T) {
	g := newTestGame(1)
	out := g.DebugState()
	for _, want := range []string{"State: playing", "Heading: right", "Head: (240, 240)"} {
		if !strings.Contains(out, want) {
			t.Errorf("DebugState() missing %q:\n%s", want, out)
		}
	}
}
