package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	panelWidth  = 24
	panelGap    = 1
	panelHeight = 18
)

// scale sets how many terminal columns one cell takes and how many field
// rows share one terminal line.
type scale struct {
	cols        int
	rowsPerLine int
}

var (
	fullScale    = scale{cols: 2, rowsPerLine: 1} // Terminal cells are roughly twice as tall as wide
	compactScale = scale{cols: 1, rowsPerLine: 2} // Half blocks
)

// boardSize returns the board size including the border.
func (sc scale) boardSize(field Field) (int, int) {
	return field.Cols()*sc.cols + 2, (field.Rows()+sc.rowsPerLine-1)/sc.rowsPerLine + 2
}

// layout places the board and the side panel on the screen.
type layout struct {
	board core.Rect // Includes the border
	panel core.Rect
	scale scale
}

// computeLayout centers board and panel on a w x h screen, using the
// compact scale when the full one does not fit. Returns the compact size
// and false when neither fits.
func computeLayout(field Field, w, h int) (layout, int, int, bool) {
	var needW, needH int
	for _, sc := range []scale{fullScale, compactScale} {
		boardW, boardH := sc.boardSize(field)
		needW = boardW + panelGap + panelWidth
		needH = max(boardH, panelHeight)
		if w < needW || h < needH {
			continue
		}

		x0 := (w - needW) / 2
		y0 := (h - needH) / 2
		return layout{
			board: core.NewRect(x0, y0, boardW, boardH),
			panel: core.NewRect(x0+boardW+panelGap, y0, panelWidth, needH),
			scale: sc,
		}, needW, needH, true
	}
	return layout{}, needW, needH, false
}

// Render draws the board, the side panel and any overlay.
func (g *Game) Render(dst *core.Screen, stats core.FrameStats) {
	dst.Clear()
	if g.session == nil {
		return
	}

	field := g.session.Field()
	lay, needW, needH, ok := computeLayout(field, dst.Width(), dst.Height())
	if !ok {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	s := g.last
	dst.DrawBox(lay.board, core.ColorBlue)
	drawField(dst, lay, field, paintField(field, s))

	renderPanel(dst, lay.panel, s, stats)

	if s.GameOver() {
		renderGameOver(dst, lay.board)
	}
}

// paintField returns the color of every field cell in row-major order.
func paintField(field Field, s Snapshot) []core.Color {
	cols, rows := field.Cols(), field.Rows()
	grid := make([]core.Color, cols*rows)
	area := core.NewRect(0, 0, cols, rows)
	paint := func(c Cell, color core.Color) {
		if col, row := field.CellIndex(c); area.Contains(col, row) {
			grid[row*cols+col] = color
		}
	}

	paint(s.Food, core.ColorBlue)
	if s.Hazard.Active {
		paint(s.Hazard.Position, core.ColorRed)
	}
	// Tail first so the head stays visible on overlap.
	for i := len(s.Segments) - 1; i >= 0; i-- {
		c := core.ColorGreen
		if i == 0 {
			c = core.ColorBrightGreen
		}
		paint(s.Segments[i], c)
	}
	return grid
}

func drawField(dst *core.Screen, lay layout, field Field, grid []core.Color) {
	cols, rows := field.Cols(), field.Rows()
	at := func(col, row int) core.Color {
		if row >= rows {
			return core.ColorDefault
		}
		return grid[row*cols+col]
	}

	sc := lay.scale
	for row := 0; row < rows; row += sc.rowsPerLine {
		y := lay.board.Y + 1 + row/sc.rowsPerLine
		for col := range cols {
			cell := core.Cell{Rune: '█', Color: at(col, row)}
			if sc.rowsPerLine == 2 {
				cell = halfBlock(at(col, row), at(col, row+1))
			}
			if cell.Color == core.ColorDefault {
				continue
			}
			for i := range sc.cols {
				dst.SetCell(lay.board.X+1+col*sc.cols+i, y, cell)
			}
		}
	}
}

// halfBlock draws two vertically stacked cells in one character.
func halfBlock(upper, lower core.Color) core.Cell {
	if upper == core.ColorDefault {
		return core.Cell{Rune: '▄', Color: lower}
	}
	return core.Cell{Rune: '▀', Color: upper, Bg: lower}
}

func renderPanel(dst *core.Screen, r core.Rect, s Snapshot, stats core.FrameStats) {
	dst.DrawBox(r, core.ColorBlue)
	x := r.X + 2
	y := r.Y + 1
	inner := r.W - 4

	dst.DrawText(x, y, fmt.Sprintf("Time: %.1f s", s.WorldTime))
	dst.DrawTextColor(x, y+1, fmt.Sprintf("FPS: %.0f", stats.FPS), core.ColorGray)

	dst.DrawText(x, y+3, "Controls:")
	dst.DrawTextColor(x, y+4, "Arrows - Turn", core.ColorGray)
	dst.DrawTextColor(x, y+5, "Esc - Exit", core.ColorGray)
	dst.DrawTextColor(x, y+6, "N - New Game", core.ColorGray)

	dst.DrawTextColor(x, y+8, fmt.Sprintf("Score: %d", s.Score), core.ColorYellow)
	dst.DrawText(x, y+9, fmt.Sprintf("Length: %d", s.Length))

	dst.DrawText(x, y+11, "Red Dot Timer:")
	filled := core.Clamp(int(float64(inner)*s.Hazard.Progress), 0, inner)
	dst.DrawHLine(x, y+12, inner, '░', core.ColorGray)
	dst.DrawHLine(x, y+12, filled, '█', core.ColorRed)
	if s.Hazard.Active {
		dst.DrawTextColor(x, y+13, "Effect: "+s.Hazard.Effect.String(), core.ColorRed)
	} else {
		dst.DrawTextColor(x, y+13, fmt.Sprintf("Next in %.0f s", s.Hazard.RespawnDelay), core.ColorGray)
	}

	if s.SlowRemaining > 0 {
		dst.DrawTextColor(x, y+15, fmt.Sprintf("Slow x%.1f %.1fs", s.SlowFactor, s.SlowRemaining), core.ColorMagenta)
	} else if s.SlowFactor > 1 {
		dst.DrawTextColor(x, y+15, fmt.Sprintf("Slow x%.1f", s.SlowFactor), core.ColorMagenta)
	}
}

func renderGameOver(dst *core.Screen, board core.Rect) {
	const title = "Game Over!"
	boxW := min(board.W-2, len(gameOverHint)+4)
	lines := wrapWords(gameOverHint, boxW-4)
	boxH := len(lines) + 4
	box := core.NewRect(board.X+(board.W-boxW)/2, board.Y+(board.H-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorRed)
	dst.DrawTextColor(box.X+(box.W-len(title))/2, box.Y+1, title, core.ColorWhite)
	for i, line := range lines {
		dst.DrawTextColor(max(box.X+1, box.X+(box.W-len(line))/2), box.Y+3+i, line, core.ColorWhite)
	}
}

const gameOverHint = "Press Esc to quit or N to start a new game."

// wrapWords splits text into lines of at most width bytes, breaking at
// spaces. A single word longer than width gets a line of its own.
func wrapWords(text string, width int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
