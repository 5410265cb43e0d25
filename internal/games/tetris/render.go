package tetris

import (
	"fmt"

	"github.com/sigco3111/Tetris-am3d/internal/core"
)

// Each board cell is drawn two characters wide so the playfield looks
// roughly square in a terminal.
const cellWidth = 2

// Render draws the playfield, HUD, and any overlay to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	fieldW := g.board.Width()*cellWidth + 2
	fieldH := g.board.Height() + 2

	if g.runtime.ScreenW < fieldW+16 || g.runtime.ScreenH < fieldH {
		g.renderTooSmall(dst)
		return
	}

	fieldX := (g.runtime.ScreenW - fieldW - 16) / 2
	fieldY := (g.runtime.ScreenH - fieldH) / 2
	if fieldX < 0 {
		fieldX = 0
	}
	if fieldY < 0 {
		fieldY = 0
	}

	dst.DrawBox(core.NewRect(fieldX, fieldY, fieldW, fieldH))
	g.renderBoard(dst, fieldX+1, fieldY+1)
	g.renderHUD(dst, fieldX+fieldW+2, fieldY+1)
	g.renderOverlays(dst, fieldX+fieldW/2, fieldY+fieldH/2)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	dst.DrawTextCentered(g.runtime.ScreenH/2, msg)
	dst.DrawTextCentered(g.runtime.ScreenH/2+1, "Please resize terminal")
}

// renderBoard draws settled cells, the clearing flash, and the active piece.
func (g *Game) renderBoard(dst *core.Screen, originX, originY int) {
	clearing := make(map[int]bool, len(g.clearingRows))
	for _, row := range g.clearingRows {
		clearing[row] = true
	}

	for row := 0; row < g.board.Height(); row++ {
		for col := 0; col < g.board.Width(); col++ {
			tag := g.board.Cell(row, col)
			if tag == 0 {
				continue
			}
			x := originX + col*cellWidth
			y := originY + row
			if clearing[row] {
				// Cleared rows flash solid white for the animation.
				dst.SetCell(x, y, '█', core.ColorBrightWhite)
				dst.SetCell(x+1, y, '█', core.ColorBrightWhite)
				continue
			}
			c := core.PieceColor(tag)
			dst.SetCell(x, y, '█', c)
			dst.SetCell(x+1, y, '█', c)
		}
	}

	if g.active == nil {
		return
	}
	m := g.active.Matrix()
	c := core.PieceColor(g.active.Kind.Tag())
	for dy := range m {
		for dx := range m[dy] {
			if m[dy][dx] == 0 {
				continue
			}
			row := g.active.Row + dy
			if row < 0 {
				continue
			}
			x := originX + (g.active.Col+dx)*cellWidth
			y := originY + row
			dst.SetCell(x, y, '█', c)
			dst.SetCell(x+1, y, '█', c)
		}
	}
}

// renderHUD draws score, progress, the next-piece preview, and status.
func (g *Game) renderHUD(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, fmt.Sprintf("Score: %d", g.score))
	dst.DrawText(x, y+1, fmt.Sprintf("Lines: %d", g.lines))
	dst.DrawText(x, y+2, fmt.Sprintf("Level: %d", g.level))

	dst.DrawText(x, y+4, "Next:")
	g.renderPreview(dst, x, y+5)

	if g.ai.enabled {
		dst.DrawTextColored(x, y+10, "AI: ON", core.ColorBrightGreen)
	} else {
		dst.DrawText(x, y+10, "AI: off")
	}
}

// renderPreview draws the queued piece in a fixed 4x2 area.
func (g *Game) renderPreview(dst *core.Screen, x, y int) {
	p := NewPiece(g.next, g.board.Width())
	m := p.Matrix()
	c := core.PieceColor(g.next.Tag())
	for dy := range m {
		for dx := range m[dy] {
			if m[dy][dx] == 0 {
				continue
			}
			dst.SetCell(x+dx*cellWidth, y+dy, '█', c)
			dst.SetCell(x+dx*cellWidth+1, y+dy, '█', c)
		}
	}
}

func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	switch g.phase {
	case PhasePaused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case PhaseGameOver:
		scoreStr := fmt.Sprintf("Score: %d", g.score)
		drawOverlay(dst, centerX, centerY, "GAME OVER", scoreStr, "Press R to restart")
	}
}

// drawOverlay draws a boxed, centered text overlay on top of the field.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}

// Controls returns the control hints shown under the playfield.
func (g *Game) Controls() string {
	return "←/→: Move | ↑: Rotate | ↓: Soft drop | Space: Hard drop | T: AI | P: Pause | R: Restart | Q: Quit"
}
