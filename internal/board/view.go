package board

// Display is what a presentation layer should draw for a cell.
type Display int

const (
	DisplayHidden Display = iota
	DisplayFlagged
	DisplayNumber    // Revealed safe cell; Adjacent holds the count (may be 0)
	DisplayMine      // Mine shown after a loss
	DisplayDetonated // The mine that ended the game
	DisplayWrongFlag // Flag on a safe cell, shown after a loss
)

// String returns a human-readable display name.
func (d Display) String() string {
	switch d {
	case DisplayHidden:
		return "hidden"
	case DisplayFlagged:
		return "flagged"
	case DisplayNumber:
		return "number"
	case DisplayMine:
		return "mine"
	case DisplayDetonated:
		return "detonated"
	case DisplayWrongFlag:
		return "wrong_flag"
	default:
		return "unknown"
	}
}

// CellView is the read-only display state of one cell.
type CellView struct {
	Display  Display
	Adjacent int
}

// View is a read-only snapshot of a session for rendering.
type View struct {
	Rows, Cols     int
	Cells          [][]CellView // Indexed [row][col]
	Outcome        Outcome
	Over           bool
	Revealed       int
	Flagged        int
	RemainingMines int
}

// View returns a snapshot of the current session state. Mine positions are
// only exposed once the session is over.
func (s *Session) View() View {
	v := View{
		Rows:           s.cfg.Rows,
		Cols:           s.cfg.Cols,
		Cells:          make([][]CellView, s.cfg.Rows),
		Outcome:        s.outcome,
		Over:           s.over,
		Revealed:       s.revealed,
		Flagged:        s.flagged,
		RemainingMines: s.RemainingMines(),
	}

	for r := range v.Cells {
		v.Cells[r] = make([]CellView, s.cfg.Cols)
		for c := range v.Cells[r] {
			v.Cells[r][c] = s.cellView(Pos{r, c})
		}
	}
	return v
}

func (s *Session) cellView(p Pos) CellView {
	cell := s.cellAt(p)
	switch cell.State {
	case Flagged:
		if s.outcome == Lost && !cell.Mine {
			return CellView{Display: DisplayWrongFlag}
		}
		return CellView{Display: DisplayFlagged}
	case Revealed:
		if !cell.Mine {
			return CellView{Display: DisplayNumber, Adjacent: cell.Adjacent}
		}
		if s.detonated != nil && *s.detonated == p {
			return CellView{Display: DisplayDetonated}
		}
		return CellView{Display: DisplayMine}
	default:
		return CellView{Display: DisplayHidden}
	}
}
