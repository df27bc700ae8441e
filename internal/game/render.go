package game

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 3 // Height of each cell (including top border)
	hudHeight  = 3
)

// boardDims returns the board size in terminal cells, borders included.
func (g *Game) boardDims() (int, int) {
	n := g.board.Size()
	return n*cellWidth + 1, n*cellHeight + 1
}

// SetScreenSize updates the screen dimensions without touching game state.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// TooSmall reports whether the screen cannot fit the board and HUD.
func (g *Game) TooSmall() bool {
	w, h := g.boardDims()
	return g.screenW < w || g.screenH < h+hudHeight
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.TooSmall() {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardDims()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderGrid(dst, boardX, boardY)
	g.renderTiles(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and best score.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.variant.Name
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow, core.ColorDefault)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	best := fmt.Sprintf("Best: %d", g.best)
	dst.DrawText(core.Max(boardX, boardX+boardW-len(best)), 1, best)

	info := fmt.Sprintf("Moves: %d", g.moves)
	if g.variant.WinValue > 0 {
		info += fmt.Sprintf("  Goal: %d", g.variant.WinValue)
	}
	dst.DrawTextColor(boardX+(boardW-len(info))/2, 2, info, core.ColorGray, core.ColorDefault)
}

// renderGrid draws the cell borders.
func (g *Game) renderGrid(dst *core.Screen, boardX, boardY int) {
	n := g.board.Size()
	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetCell(px, py, core.Cell{Rune: corner, Fg: core.ColorGray, Bg: core.ColorDefault})

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, core.Cell{Rune: '─', Fg: core.ColorGray, Bg: core.ColorDefault})
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, core.Cell{Rune: '│', Fg: core.ColorGray, Bg: core.ColorDefault})
				}
			}
		}
	}
}

// renderTiles draws every tile at its pixel position scaled to terminal cells,
// so slides show up between grid lines. Consumed tiles go first so the
// surviving tile covers them.
func (g *Game) renderTiles(dst *core.Screen, boardX, boardY int) {
	for _, t := range g.consumed() {
		g.drawTile(dst, boardX, boardY, t)
	}
	var moving []*Tile
	for _, t := range g.board.Tiles() {
		if g.board.IsMoving(t) {
			moving = append(moving, t)
			continue
		}
		g.drawTile(dst, boardX, boardY, t)
	}
	for _, t := range moving {
		g.drawTile(dst, boardX, boardY, t)
	}
}

func (g *Game) drawTile(dst *core.Screen, boardX, boardY int, t *Tile) {
	cs := g.anim.CellSize()
	x := boardX + int(math.Round(t.X/cs*cellWidth)) + 1
	y := boardY + int(math.Round(t.Y/cs*cellHeight)) + 1

	style := g.palette.Style(t.Value)
	dst.FillRect(core.NewRect(x, y, cellWidth-1, cellHeight-1), core.Cell{Rune: ' ', Fg: style.Fg, Bg: style.Bg})

	label := strconv.Itoa(t.Value)
	pad := core.Max(0, (cellWidth-1-len(label))/2)
	dst.DrawTextColor(x+pad, y, label, style.Fg, style.Bg)
}

// renderOverlays draws the win and game over boxes.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX, centerY := core.NewRect(boardX, boardY, boardW, boardH).Center()

	switch g.state {
	case StateWon:
		g.drawOverlay(dst, centerX, centerY, "YOU WIN!", fmt.Sprintf("Score: %d", g.score), "C: continue  R: restart")
	case StateGameOver:
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", fmt.Sprintf("Max tile: %d", g.board.MaxValue()), "R: restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, core.Cell{Rune: ' ', Fg: core.ColorDefault, Bg: core.ColorDefault})
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
