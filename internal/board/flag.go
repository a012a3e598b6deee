package board

import "fmt"

// ToggleFlag flags a hidden cell or unflags a flagged one. Revealed cells
// cannot be flagged, and unless UncappedFlags is set no more flags than mines
// can be placed. Calls after the session is over do nothing.
func (s *Session) ToggleFlag(row, col int) (View, error) {
	if !s.inBounds(row, col) {
		return s.View(), fmt.Errorf("%w: flag (%d,%d)", ErrOutOfBounds, row, col)
	}
	if s.over {
		return s.View(), nil
	}

	cell := s.cellAt(Pos{row, col})
	switch cell.State {
	case Revealed:
		// Nothing to flag
	case Flagged:
		cell.State = Hidden
		s.flagged--
	case Hidden:
		if s.cfg.UncappedFlags || s.flagged < s.cfg.Mines {
			cell.State = Flagged
			s.flagged++
		}
	}
	return s.View(), nil
}
