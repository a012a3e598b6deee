package board

import "fmt"

// Reveal opens the cell at (row, col).
//
// The first reveal of a session places the mines, keeping the clicked cell
// and its neighbours clear. Revealing a flagged or already revealed cell does
// nothing, as does any call once the session is over. Revealing a mine loses
// the game; otherwise the connected empty region is opened and the win
// condition is checked.
func (s *Session) Reveal(row, col int) (View, error) {
	if !s.inBounds(row, col) {
		return s.View(), fmt.Errorf("%w: reveal (%d,%d)", ErrOutOfBounds, row, col)
	}
	if s.over {
		return s.View(), nil
	}

	p := Pos{row, col}
	cell := s.cellAt(p)
	if cell.State != Hidden {
		return s.View(), nil
	}

	if !s.started {
		s.placeMines(p)
		s.computeAdjacency()
		s.started = true
	}

	if cell.Mine {
		s.detonate(p)
		return s.View(), nil
	}

	s.floodFill(p)
	s.checkWin()
	return s.View(), nil
}

// placeMines places exactly cfg.Mines mines by rejection sampling, skipping
// the 3x3 window around first. When the board is too crowded to honour the
// full window, only first itself is excluded.
func (s *Session) placeMines(first Pos) {
	excluded := exclusionWindow(first, s.cfg.Rows, s.cfg.Cols)
	if s.cfg.Rows*s.cfg.Cols-excluded.Size() < s.cfg.Mines {
		excluded = Window{Row: first.Row, Col: first.Col, Rows: 1, Cols: 1}
	}

	for len(s.mines) < s.cfg.Mines {
		p := Pos{s.rng.Intn(s.cfg.Rows), s.rng.Intn(s.cfg.Cols)}
		if excluded.Contains(p) || s.cellAt(p).Mine {
			continue
		}
		s.setMine(p)
	}
}

// computeAdjacency fills in Adjacent for every non-mine cell.
func (s *Session) computeAdjacency() {
	for _, m := range s.mines {
		s.neighbours(m, func(n Pos) {
			if c := s.cellAt(n); !c.Mine {
				c.Adjacent++
			}
		})
	}
}

// floodFill reveals start and, through an explicit stack, every cell reachable
// from it across zero-count cells. Flagged and already revealed cells are
// skipped, which bounds the walk to one visit per cell.
func (s *Session) floodFill(start Pos) {
	stack := []Pos{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		cell := s.cellAt(p)
		if cell.State != Hidden || cell.Mine {
			continue
		}
		cell.State = Revealed
		s.revealed++

		if cell.Adjacent == 0 {
			s.neighbours(p, func(n Pos) {
				if s.cellAt(n).State == Hidden {
					stack = append(stack, n)
				}
			})
		}
	}
}

// detonate ends the session as a loss and shows every unflagged mine.
// Flagged mines stay flagged.
func (s *Session) detonate(p Pos) {
	s.detonated = &p
	for _, m := range s.mines {
		if c := s.cellAt(m); c.State != Flagged {
			c.State = Revealed
		}
	}
	s.outcome = Lost
	s.over = true
}

// checkWin ends the session as a win once every non-mine cell is revealed,
// flagging any mine the player left unflagged.
func (s *Session) checkWin() {
	if s.revealed != s.cfg.Rows*s.cfg.Cols-s.cfg.Mines {
		return
	}
	for _, m := range s.mines {
		if c := s.cellAt(m); c.State != Flagged {
			c.State = Flagged
			s.flagged++
		}
	}
	s.outcome = Won
	s.over = true
}
