package ui

// Layout places the board on the terminal: a status line on top, then one
// row per board row with each cell CellWidth columns wide.
type Layout struct {
	OriginX, OriginY int // Screen position of cell (0,0)
	CellWidth        int
}

// DefaultLayout leaves one blank line between the status line and the board.
func DefaultLayout() Layout {
	return Layout{OriginX: 1, OriginY: 2, CellWidth: 2}
}

// ScreenPos returns the screen position where a cell's glyph is drawn.
func (l Layout) ScreenPos(row, col int) (x, y int) {
	return l.OriginX + col*l.CellWidth, l.OriginY + row
}

// CellAt maps a screen position to a board cell. ok is false when the
// position lies outside a rows x cols board.
func (l Layout) CellAt(x, y, rows, cols int) (row, col int, ok bool) {
	dx, dy := x-l.OriginX, y-l.OriginY
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}
	row, col = dy, dx/l.CellWidth
	if row >= rows || col >= cols {
		return 0, 0, false
	}
	return row, col, true
}
