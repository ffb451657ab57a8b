package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout of the board and the sidebar, in screen cells.
const (
	cellWidth   = 2 // each field column is drawn two characters wide
	boardWidth  = FieldWidth*cellWidth + 2
	boardHeight = FieldHeight + 2
	sidebarX    = boardWidth + 2
	sidebarW    = 18

	// MinScreenW and MinScreenH are the smallest screen the game fits on.
	MinScreenW = sidebarX + sidebarW
	MinScreenH = boardHeight
)

// Render draws info onto dst. The screen is cleared first.
func Render(dst *core.Screen, info Info) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	renderBoard(dst, info)
	renderSidebar(dst, info)

	switch info.Mode {
	case ModeIdle:
		if info.HasPiece {
			renderBanner(dst, "GAME OVER", "S to play again")
		} else {
			renderBanner(dst, "TETRIS", "S to start")
		}
	case ModePaused:
		renderBanner(dst, "PAUSED", "P to resume")
	}
}

func renderBoard(dst *core.Screen, info Info) {
	dst.DrawBox(core.NewRect(0, 0, boardWidth, boardHeight), core.ColorGray)

	for r := range FieldHeight {
		for c := range FieldWidth {
			x, y := 1+c*cellWidth, 1+r
			switch info.Field[r][c] {
			case CellLocked:
				dst.DrawTextColor(x, y, "██", core.ColorWhite)
			case CellTransient:
				color := core.ColorBrightWhite
				if info.HasPiece {
					color = info.Falling.Color()
				}
				dst.DrawTextColor(x, y, "██", color)
			default:
				dst.DrawTextColor(x, y, " .", core.ColorGray)
			}
		}
	}
}

func renderSidebar(dst *core.Screen, info Info) {
	lines := []string{
		fmt.Sprintf("RECORD: %d", info.HighScore),
		fmt.Sprintf("SCORE : %d", info.Score),
		fmt.Sprintf("LEVEL : %d", info.Level),
		fmt.Sprintf("SPEED : %d", info.Speed),
		fmt.Sprintf("LINES : %d", info.Lines),
	}
	y := 1
	for _, line := range lines {
		dst.DrawText(sidebarX, y, line)
		y += 2
	}

	y++
	dst.DrawText(sidebarX, y, "NEXT")
	y += 2

	kind, ok := info.NextKind()
	if !ok {
		return
	}
	for r := range PreviewSize {
		for c := range PreviewSize {
			if info.Next[r][c] != 0 {
				dst.DrawTextColor(sidebarX+c*cellWidth, y+r, "██", kind.Color())
			}
		}
	}
}

// renderBanner draws a two-line message box centered on the board.
func renderBanner(dst *core.Screen, title, hint string) {
	boxW := boardWidth - 4
	box := core.NewRect(2, boardHeight/2-3, boxW, 5)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorYellow)

	drawCentered(dst, box, box.Y+1, title, core.ColorYellow)
	drawCentered(dst, box, box.Y+3, hint, core.ColorDefault)
}

func drawCentered(dst *core.Screen, box core.Rect, y int, text string, color core.Color) {
	x := core.Clamp(box.X+(box.W-len([]rune(text)))/2, box.X+1, box.Right()-1)
	dst.DrawTextColor(x, y, text, color)
}
