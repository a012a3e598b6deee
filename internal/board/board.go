package board

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Config describes the board to build.
type Config struct {
	Rows  int
	Cols  int
	Mines int

	// UncappedFlags lifts the usual limit of one flag per mine, letting the
	// remaining-mine counter go negative.
	UncappedFlags bool
}

// Validate checks that the configuration describes a playable board.
// Boards with more than Rows*Cols-9 mines are accepted; the first-click
// exclusion then shrinks to the clicked cell alone.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidConfiguration, c.Rows, c.Cols)
	}
	if c.Mines <= 0 || c.Mines >= c.Rows*c.Cols {
		return fmt.Errorf("%w: mine count must be in (0, %d), got %d", ErrInvalidConfiguration, c.Rows*c.Cols, c.Mines)
	}
	return nil
}

// Session holds the state of one game. It is mutated only through Reveal and
// ToggleFlag and is replaced wholesale by a new session on reset.
//
// A Session is not safe for concurrent use; callers serialize actions.
type Session struct {
	cfg   Config
	cells []Cell // Row-major, index row*cols+col
	mines []Pos  // Placement order
	rng   *rand.Rand

	revealed  int
	flagged   int
	started   bool
	over      bool
	outcome   Outcome
	detonated *Pos
}

// NewGame creates a fresh session. Mines are not placed until the first
// reveal, so no randomness is consumed here. A nil rng uses a time-seeded
// source.
func NewGame(cfg Config, rng *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Session{
		cfg:   cfg,
		cells: make([]Cell, cfg.Rows*cfg.Cols),
		mines: make([]Pos, 0, cfg.Mines),
		rng:   rng,
	}, nil
}

// NewGameWithMines creates a session with mines at fixed positions, skipping
// random placement. The session counts as started.
func NewGameWithMines(cfg Config, mines []Pos) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(mines) != cfg.Mines {
		return nil, fmt.Errorf("%w: got %d mine positions for %d mines", ErrInvalidConfiguration, len(mines), cfg.Mines)
	}

	s := &Session{
		cfg:   cfg,
		cells: make([]Cell, cfg.Rows*cfg.Cols),
		mines: make([]Pos, 0, cfg.Mines),
	}
	for _, p := range mines {
		if !s.inBounds(p.Row, p.Col) {
			return nil, fmt.Errorf("%w: mine at (%d,%d)", ErrOutOfBounds, p.Row, p.Col)
		}
		if s.cellAt(p).Mine {
			return nil, fmt.Errorf("%w: duplicate mine at (%d,%d)", ErrInvalidConfiguration, p.Row, p.Col)
		}
		s.setMine(p)
	}
	s.computeAdjacency()
	s.started = true
	return s, nil
}

// Rows returns the number of rows.
func (s *Session) Rows() int { return s.cfg.Rows }

// Cols returns the number of columns.
func (s *Session) Cols() int { return s.cfg.Cols }

// MineCount returns the total number of mines on the board.
func (s *Session) MineCount() int { return s.cfg.Mines }

// Revealed returns the number of revealed non-mine cells.
func (s *Session) Revealed() int { return s.revealed }

// Flagged returns the number of flagged cells.
func (s *Session) Flagged() int { return s.flagged }

// Started reports whether mines have been placed.
func (s *Session) Started() bool { return s.started }

// IsOver reports whether the session has ended.
func (s *Session) IsOver() bool { return s.over }

// Outcome returns the current outcome.
func (s *Session) Outcome() Outcome { return s.outcome }

// RemainingMines returns the mine counter shown to the player.
func (s *Session) RemainingMines() int { return s.cfg.Mines - s.flagged }

// Detonated returns the mine that ended the game, if any.
func (s *Session) Detonated() (Pos, bool) {
	if s.detonated == nil {
		return Pos{}, false
	}
	return *s.detonated, true
}

// Mines returns a copy of the mine positions. It is empty until the first
// reveal.
func (s *Session) Mines() []Pos {
	out := make([]Pos, len(s.mines))
	copy(out, s.mines)
	return out
}

// Cell returns the cell at the given position.
func (s *Session) Cell(row, col int) (Cell, error) {
	if !s.inBounds(row, col) {
		return Cell{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	return s.cells[s.index(Pos{row, col})], nil
}

// String renders the board for debugging: '-' hidden, 'F' flagged,
// '*' revealed mine, '.' empty, digits for counts.
func (s *Session) String() string {
	var sb strings.Builder
	for r := 0; r < s.cfg.Rows; r++ {
		for c := 0; c < s.cfg.Cols; c++ {
			cell := s.cells[s.index(Pos{r, c})]
			switch {
			case cell.State == Flagged:
				sb.WriteByte('F')
			case cell.State == Hidden:
				sb.WriteByte('-')
			case cell.Mine:
				sb.WriteByte('*')
			case cell.Adjacent == 0:
				sb.WriteByte('.')
			default:
				sb.WriteByte(byte('0' + cell.Adjacent))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (s *Session) inBounds(row, col int) bool {
	return row >= 0 && row < s.cfg.Rows && col >= 0 && col < s.cfg.Cols
}

func (s *Session) index(p Pos) int {
	return p.Row*s.cfg.Cols + p.Col
}

func (s *Session) cellAt(p Pos) *Cell {
	return &s.cells[s.index(p)]
}

func (s *Session) setMine(p Pos) {
	s.cellAt(p).Mine = true
	s.mines = append(s.mines, p)
}

// neighbours calls fn for each in-bounds neighbour of p.
func (s *Session) neighbours(p Pos, fn func(Pos)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Pos{p.Row + dr, p.Col + dc}
			if s.inBounds(n.Row, n.Col) {
				fn(n)
			}
		}
	}
}
