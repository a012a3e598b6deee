// Package board provides the Minesweeper board engine: mine placement,
// flood-fill reveals, flag bookkeeping and win/loss detection.
package board

// CellState represents what the player currently sees on a cell.
type CellState int

const (
	// Hidden is the initial state of every cell.
	Hidden CellState = iota
	// Revealed cells show their adjacent mine count (or a mine after a loss).
	Revealed
	// Flagged cells are marked as suspected mines and cannot be revealed.
	Flagged
)

// String returns a human-readable state name.
func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Cell is a single square of the board.
type Cell struct {
	Mine     bool      // Set during placement, immutable afterwards
	State    CellState // Hidden, Revealed or Flagged
	Adjacent int       // Mines among the up-to-8 neighbours (0 for mines)
}

// Pos identifies a cell by row and column.
type Pos struct {
	Row, Col int
}
