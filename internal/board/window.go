package board

// Window is a rectangular region of the board, clipped to its bounds.
type Window struct {
	Row, Col   int // Top-left corner
	Rows, Cols int // Dimensions
}

// exclusionWindow returns the 3x3 neighbourhood centred on p, clipped to a
// rows x cols board.
func exclusionWindow(p Pos, rows, cols int) Window {
	top := max(p.Row-1, 0)
	left := max(p.Col-1, 0)
	bottom := min(p.Row+1, rows-1)
	right := min(p.Col+1, cols-1)
	return Window{
		Row:  top,
		Col:  left,
		Rows: bottom - top + 1,
		Cols: right - left + 1,
	}
}

// Contains returns true if the given position is inside the window.
func (w Window) Contains(p Pos) bool {
	return p.Row >= w.Row && p.Row < w.Row+w.Rows && p.Col >= w.Col && p.Col < w.Col+w.Cols
}

// Size returns the number of cells covered by the window.
func (w Window) Size() int {
	return w.Rows * w.Cols
}
