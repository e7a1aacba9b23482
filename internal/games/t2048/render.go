package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 4

	winBannerTicks = 180 // ~3 seconds at 60 ticks/sec
)

// tileColors maps tile values to display colors. Larger values use the last entry.
var tileColors = []struct {
	value int
	color core.Color
}{
	{2, core.ColorWhite},
	{4, core.ColorBrightWhite},
	{8, core.ColorYellow},
	{16, core.ColorOrange},
	{32, core.ColorBrightRed},
	{64, core.ColorRed},
	{128, core.ColorBrightYellow},
	{256, core.ColorBrightGreen},
	{512, core.ColorGreen},
	{1024, core.ColorBrightCyan},
	{2048, core.ColorBrightMagenta},
	{4096, core.ColorBrightBlue},
}

// TileColor returns the color a tile value is drawn with.
func TileColor(value int) core.Color {
	for _, tc := range tileColors {
		if value <= tc.value {
			return tc.color
		}
	}
	return core.ColorMagenta
}

// boardDimensions returns the board size on screen, borders included.
func boardDimensions(size int) (w, h int) {
	return size*cellWidth + 1, size*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := boardDimensions(g.variant.Size)
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderGrid(dst, boardX, boardY)

	if g.anim.phase == PhaseSlide {
		g.renderSliding(dst, boardX, boardY)
	} else {
		g.renderTiles(dst, boardX, boardY)
	}

	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, scores and counters above the board.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	s := g.session

	title := g.variant.Name
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", s.Score()))
	best := fmt.Sprintf("Best: %d", s.Best())
	dst.DrawText(max(boardX, boardX+boardW-len(best)), 1, best)

	stats := s.Stats()
	counters := fmt.Sprintf("Moves %d  Merges %d  Avg %d", stats.Moves, stats.Merges, stats.AverageTile)
	dst.DrawTextColor(boardX, 2, counters, core.ColorGray)

	if g.undone {
		dst.DrawTextColor(max(boardX, boardX+boardW-len("undo")), 2, "undo", core.ColorCyan)
	}
}

// renderGrid draws the cell borders.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY int) {
	n := g.variant.Size
	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.SetColor(px, py, gridCorner(x, y, n), core.ColorGray)

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

func gridCorner(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	default:
		return '┼'
	}
}

// renderTiles draws the settled board. During the pop phase new and merged
// tiles are drawn highlighted.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int) {
	popping := make(map[engine.Position]bool)
	if g.anim.phase == PhasePop {
		for _, a := range g.anim.tiles {
			popping[engine.Position{Row: a.ToY, Col: a.ToX}] = true
		}
	}

	for r, row := range g.session.Board() {
		for c, t := range row {
			if t == nil {
				continue
			}
			drawTile(dst, boardX, boardY, c, r, t.Value, popping[engine.Position{Row: r, Col: c}])
		}
	}
}

// renderSliding draws tiles at their interpolated positions.
func (g *Game) renderSliding(dst *core.Screen, boardX, boardY int) {
	for i := range g.anim.tiles {
		a := &g.anim.tiles[i]
		x, y := a.interpolatePosition()
		drawTile(dst, boardX, boardY, int(math.Round(x)), int(math.Round(y)), a.Value, false)
	}
}

// drawTile draws a value centered in the cell at column col, row row.
func drawTile(dst *core.Screen, boardX, boardY, col, row, value int, highlight bool) {
	cellX := boardX + col*cellWidth + 1
	cellY := boardY + row*cellHeight + 1

	text := strconv.Itoa(value)
	if highlight {
		text = "[" + text + "]"
	}
	padLeft := max((cellWidth-1-len(text))/2, 0)

	color := TileColor(value)
	if highlight {
		color = core.ColorBrightWhite
	}
	dst.DrawTextColor(cellX+padLeft, cellY, text, color)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.paused:
		drawOverlay(dst, board, core.ColorCyan, "PAUSED", "Press P to resume")
	case g.session.GameOver():
		maxStr := fmt.Sprintf("Max tile: %d", g.session.Stats().MaxTile)
		hint := "Press R to restart"
		if g.session.CanUndo() {
			hint = "R: restart  U: undo"
		}
		drawOverlay(dst, board, core.ColorBrightRed, "GAME OVER", maxStr, hint)
	case g.banner > 0:
		drawOverlay(dst, board, core.ColorBrightGreen,
			fmt.Sprintf("%d reached!", g.session.Target()), "Keep going")
	}
}

// drawOverlay draws a centered text box over the board.
func drawOverlay(dst *core.Screen, area core.Rect, color core.Color, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := area.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, color)

	cx, _ := box.Center()
	for i, line := range lines {
		dst.DrawTextColor(cx-len(line)/2, box.Y+1+i, line, color)
	}
}
