package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/minesweep/internal/board"
	"github.com/samdwyer/minesweep/internal/gamedata"
)

// Status is the text drawn above the board.
type Status struct {
	Elapsed        int
	RemainingMines int
	Message        string
}

// Line formats the status as shown on screen.
func (s Status) Line() string {
	line := fmt.Sprintf("Time: %ds | Mines: %d", s.Elapsed, s.RemainingMines)
	if s.Message != "" {
		line += " | " + s.Message
	}
	return line
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
	theme  *gamedata.ThemeDef
	layout Layout
}

// NewRenderer creates a new renderer for the given screen and theme.
func NewRenderer(screen *Screen, theme *gamedata.ThemeDef) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  theme,
		layout: DefaultLayout(),
	}
}

// Layout returns the board placement used by the renderer.
func (r *Renderer) Layout() Layout {
	return r.layout
}

// Render draws the status line and the board, highlighting the cursor cell.
func (r *Renderer) Render(view board.View, cursor board.Pos, status Status) {
	r.screen.Clear()

	r.drawText(0, 0, status.Line(), tcell.StyleDefault.Foreground(gamedata.Color(r.theme.Colors.Status)))

	for row := 0; row < view.Rows; row++ {
		for col := 0; col < view.Cols; col++ {
			ch, style := r.cellGlyph(view.Cells[row][col])
			if cursor.Row == row && cursor.Col == col && !view.Over {
				style = style.Background(gamedata.Color(r.theme.Colors.Cursor))
			}
			x, y := r.layout.ScreenPos(row, col)
			r.screen.SetContent(x, y, ch, style)
		}
	}

	r.screen.Show()
}

// cellGlyph returns the rune and style for a cell.
func (r *Renderer) cellGlyph(cell board.CellView) (rune, tcell.Style) {
	g, c := r.theme.Glyphs, r.theme.Colors
	switch cell.Display {
	case board.DisplayFlagged:
		return gamedata.Rune(g.Flag), styled(c.Flag).Bold(true)
	case board.DisplayMine:
		return gamedata.Rune(g.Mine), styled(c.Mine)
	case board.DisplayDetonated:
		return gamedata.Rune(g.Detonated), styled(c.Detonated).Bold(true)
	case board.DisplayWrongFlag:
		return gamedata.Rune(g.WrongFlag), styled(c.WrongFlag)
	case board.DisplayNumber:
		if cell.Adjacent == 0 {
			return gamedata.Rune(g.Empty), styled(c.Empty)
		}
		return rune('0' + cell.Adjacent), tcell.StyleDefault.Foreground(r.theme.NumberColor(cell.Adjacent)).Bold(true)
	default:
		return gamedata.Rune(g.Hidden), styled(c.Hidden)
	}
}

// drawText writes a string starting at the given position.
func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	for i, ch := range []rune(msg) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

func styled(hex string) tcell.Style {
	return tcell.StyleDefault.Foreground(gamedata.Color(hex))
}
