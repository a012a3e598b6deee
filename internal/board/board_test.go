package board

import (
	"errors"
	"math/rand"
	"testing"
)

// fixedSession builds a 5x5 board with mines at (0,0), (0,1) and (4,4).
func fixedSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewGameWithMines(Config{Rows: 5, Cols: 5, Mines: 3}, []Pos{{0, 0}, {0, 1}, {4, 4}})
	if err != nil {
		t.Fatalf("NewGameWithMines() error = %v", err)
	}
	return s
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		valid bool
	}{
		{"typical", Config{Rows: 12, Cols: 12, Mines: 30}, true},
		{"single safe cell", Config{Rows: 3, Cols: 3, Mines: 8}, true},
		{"zero rows", Config{Rows: 0, Cols: 5, Mines: 1}, false},
		{"negative cols", Config{Rows: 5, Cols: -1, Mines: 1}, false},
		{"no mines", Config{Rows: 5, Cols: 5, Mines: 0}, false},
		{"all mines", Config{Rows: 5, Cols: 5, Mines: 25}, false},
		{"too many mines", Config{Rows: 5, Cols: 5, Mines: 40}, false},
	}

	for _, tt := range tests {
		err := tt.cfg.Validate()
		if tt.valid && err != nil {
			t.Errorf("%s: Validate() error = %v, want nil", tt.name, err)
		}
		if !tt.valid && !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("%s: Validate() error = %v, want ErrInvalidConfiguration", tt.name, err)
		}
	}
}

func TestNewGame(t *testing.T) {
	s, err := NewGame(Config{Rows: 9, Cols: 9, Mines: 10}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}

	if s.Revealed() != 0 {
		t.Errorf("Revealed() = %d, want 0", s.Revealed())
	}
	if s.Flagged() != 0 {
		t.Errorf("Flagged() = %d, want 0", s.Flagged())
	}
	if s.Outcome() != InProgress {
		t.Errorf("Outcome() = %v, want InProgress", s.Outcome())
	}
	if s.Started() || s.IsOver() {
		t.Errorf("Started() = %v, IsOver() = %v, want false, false", s.Started(), s.IsOver())
	}
	if len(s.Mines()) != 0 {
		t.Errorf("Mines() has %d entries before first reveal, want 0", len(s.Mines()))
	}
	if s.RemainingMines() != 10 {
		t.Errorf("RemainingMines() = %d, want 10", s.RemainingMines())
	}
}

func TestNewGameInvalid(t *testing.T) {
	if _, err := NewGame(Config{Rows: 2, Cols: 2, Mines: 4}, nil); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("NewGame() error = %v, want ErrInvalidConfiguration", err)
	}
}

func TestNewGameWithMinesInvalid(t *testing.T) {
	cfg := Config{Rows: 3, Cols: 3, Mines: 2}
	tests := []struct {
		name  string
		mines []Pos
		want  error
	}{
		{"wrong count", []Pos{{0, 0}}, ErrInvalidConfiguration},
		{"duplicate", []Pos{{1, 1}, {1, 1}}, ErrInvalidConfiguration},
		{"out of bounds", []Pos{{0, 0}, {3, 0}}, ErrOutOfBounds},
	}

	for _, tt := range tests {
		if _, err := NewGameWithMines(cfg, tt.mines); !errors.Is(err, tt.want) {
			t.Errorf("%s: NewGameWithMines() error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestAdjacentCounts(t *testing.T) {
	s := fixedSession(t)
	want := [][]int{
		{0, 0, 1, 0, 0},
		{2, 2, 1, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 1, 1},
		{0, 0, 0, 1, 0},
	}

	for r := range want {
		for c := range want[r] {
			cell, err := s.Cell(r, c)
			if err != nil {
				t.Fatalf("Cell(%d,%d) error = %v", r, c, err)
			}
			if cell.Mine {
				continue
			}
			if cell.Adjacent != want[r][c] {
				t.Errorf("Cell(%d,%d).Adjacent = %d, want %d", r, c, cell.Adjacent, want[r][c])
			}
		}
	}
}

func TestRevealFloodFillFixedMines(t *testing.T) {
	s := fixedSession(t)

	v, err := s.Reveal(2, 2)
	if err != nil {
		t.Fatalf("Reveal() error = %v", err)
	}

	// Every safe cell is connected to (2,2), so the fill clears the board.
	if v.Revealed != 22 {
		t.Errorf("Revealed = %d, want 22", v.Revealed)
	}
	if v.Outcome != Won || !v.Over {
		t.Errorf("Outcome = %v, Over = %v, want Won, true", v.Outcome, v.Over)
	}
	if v.Flagged != 3 || v.RemainingMines != 0 {
		t.Errorf("Flagged = %d, RemainingMines = %d, want 3, 0", v.Flagged, v.RemainingMines)
	}

	want := "FF1..\n221..\n.....\n...11\n...1F\n"
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestRevealStopsAtNumberedBorder(t *testing.T) {
	// A wall of mines down column 2 splits the board in two.
	s, err := NewGameWithMines(Config{Rows: 3, Cols: 5, Mines: 3}, []Pos{{0, 2}, {1, 2}, {2, 2}})
	if err != nil {
		t.Fatalf("NewGameWithMines() error = %v", err)
	}

	v, err := s.Reveal(1, 0)
	if err != nil {
		t.Fatalf("Reveal() error = %v", err)
	}
	if v.Revealed != 6 {
		t.Errorf("Revealed = %d, want 6", v.Revealed)
	}
	if v.Outcome != InProgress {
		t.Errorf("Outcome = %v, want InProgress", v.Outcome)
	}

	// Mines stay hidden while the game runs.
	want := ".2---\n.3---\n.2---\n"
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}

func TestRevealNumberedCellDoesNotSpread(t *testing.T) {
	s := fixedSession(t)

	v, _ := s.Reveal(1, 0)
	if v.Revealed != 1 {
		t.Errorf("Revealed = %d, want 1", v.Revealed)
	}
	if got := v.Cells[1][0]; got.Display != DisplayNumber || got.Adjacent != 2 {
		t.Errorf("Cells[1][0] = %+v, want number 2", got)
	}
}

func TestRevealIdempotent(t *testing.T) {
	s := fixedSession(t)
	s.Reveal(1, 0)
	before := s.String()

	v, err := s.Reveal(1, 0)
	if err != nil {
		t.Fatalf("Reveal() error = %v", err)
	}
	if v.Revealed != 1 || s.String() != before {
		t.Errorf("second Reveal changed state: Revealed = %d", v.Revealed)
	}
}

func TestRevealMineLoses(t *testing.T) {
	s := fixedSession(t)
	s.ToggleFlag(0, 1) // correct flag on a mine
	s.ToggleFlag(2, 2) // wrong flag on a safe cell

	v, err := s.Reveal(0, 0)
	if err != nil {
		t.Fatalf("Reveal() error = %v", err)
	}

	if v.Outcome != Lost || !v.Over {
		t.Fatalf("Outcome = %v, Over = %v, want Lost, true", v.Outcome, v.Over)
	}
	if v.Revealed != 0 {
		t.Errorf("Revealed = %d, want 0", v.Revealed)
	}

	tests := []struct {
		pos  Pos
		want Display
	}{
		{Pos{0, 0}, DisplayDetonated},
		{Pos{0, 1}, DisplayFlagged},
		{Pos{4, 4}, DisplayMine},
		{Pos{2, 2}, DisplayWrongFlag},
		{Pos{3, 3}, DisplayHidden},
	}
	for _, tt := range tests {
		if got := v.Cells[tt.pos.Row][tt.pos.Col].Display; got != tt.want {
			t.Errorf("Cells[%d][%d].Display = %v, want %v", tt.pos.Row, tt.pos.Col, got, tt.want)
		}
	}

	if c, _ := s.Cell(0, 1); c.State != Flagged {
		t.Errorf("flagged mine state = %v, want flagged", c.State)
	}
	if p, ok := s.Detonated(); !ok || p != (Pos{0, 0}) {
		t.Errorf("Detonated() = %v, %v, want (0,0), true", p, ok)
	}
}

func TestActionsAfterGameOverAreNoOps(t *testing.T) {
	s := fixedSession(t)
	s.Reveal(0, 0)
	before := s.String()
	flagged := s.Flagged()

	s.Reveal(3, 0)
	s.ToggleFlag(3, 0)
	s.ToggleFlag(4, 4)

	if s.String() != before {
		t.Errorf("board changed after game over:\n%s\nwant\n%s", s.String(), before)
	}
	if s.Flagged() != flagged || s.Revealed() != 0 || s.Outcome() != Lost {
		t.Errorf("counters changed after game over: flagged=%d revealed=%d outcome=%v",
			s.Flagged(), s.Revealed(), s.Outcome())
	}
}

func TestFlagBlocksReveal(t *testing.T) {
	s := fixedSession(t)
	s.ToggleFlag(0, 0)

	v, err := s.Reveal(0, 0)
	if err != nil {
		t.Fatalf("Reveal() error = %v", err)
	}
	if v.Cells[0][0].Display != DisplayFlagged {
		t.Errorf("Cells[0][0].Display = %v, want flagged", v.Cells[0][0].Display)
	}
	if v.Revealed != 0 || v.Outcome != InProgress {
		t.Errorf("Revealed = %d, Outcome = %v, want 0, InProgress", v.Revealed, v.Outcome)
	}
}

func TestFlagBeforeFirstRevealDefersPlacement(t *testing.T) {
	s, _ := NewGame(Config{Rows: 5, Cols: 5, Mines: 3}, rand.New(rand.NewSource(7)))
	s.ToggleFlag(2, 2)
	s.Reveal(2, 2)

	if s.Started() {
		t.Error("Reveal of a flagged cell should not place mines")
	}
}

func TestToggleFlag(t *testing.T) {
	s := fixedSession(t)

	s.ToggleFlag(3, 3)
	if s.Flagged() != 1 || s.RemainingMines() != 2 {
		t.Errorf("after flag: Flagged() = %d, RemainingMines() = %d, want 1, 2", s.Flagged(), s.RemainingMines())
	}

	s.ToggleFlag(3, 3)
	if s.Flagged() != 0 {
		t.Errorf("after unflag: Flagged() = %d, want 0", s.Flagged())
	}
	if c, _ := s.Cell(3, 3); c.State != Hidden {
		t.Errorf("after unflag: state = %v, want hidden", c.State)
	}

	s.Reveal(1, 0)
	s.ToggleFlag(1, 0)
	if c, _ := s.Cell(1, 0); c.State != Revealed {
		t.Errorf("flagging a revealed cell: state = %v, want revealed", c.State)
	}
	if s.Flagged() != 0 {
		t.Errorf("flagging a revealed cell: Flagged() = %d, want 0", s.Flagged())
	}
}

func TestFlagCap(t *testing.T) {
	tests := []struct {
		name          string
		uncapped      bool
		wantFlagged   int
		wantRemaining int
	}{
		{"capped", false, 3, 0},
		{"uncapped", true, 5, -2},
	}

	for _, tt := range tests {
		cfg := Config{Rows: 5, Cols: 5, Mines: 3, UncappedFlags: tt.uncapped}
		s, err := NewGameWithMines(cfg, []Pos{{0, 0}, {0, 1}, {4, 4}})
		if err != nil {
			t.Fatalf("%s: NewGameWithMines() error = %v", tt.name, err)
		}
		for c := 0; c < 5; c++ {
			s.ToggleFlag(2, c)
		}
		if s.Flagged() != tt.wantFlagged {
			t.Errorf("%s: Flagged() = %d, want %d", tt.name, s.Flagged(), tt.wantFlagged)
		}
		if s.RemainingMines() != tt.wantRemaining {
			t.Errorf("%s: RemainingMines() = %d, want %d", tt.name, s.RemainingMines(), tt.wantRemaining)
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	s := fixedSession(t)
	before := s.String()

	positions := []Pos{{-1, 0}, {0, -1}, {5, 0}, {0, 5}}
	for _, p := range positions {
		if _, err := s.Reveal(p.Row, p.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Reveal(%d,%d) error = %v, want ErrOutOfBounds", p.Row, p.Col, err)
		}
		if _, err := s.ToggleFlag(p.Row, p.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("ToggleFlag(%d,%d) error = %v, want ErrOutOfBounds", p.Row, p.Col, err)
		}
		if _, err := s.Cell(p.Row, p.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Cell(%d,%d) error = %v, want ErrOutOfBounds", p.Row, p.Col, err)
		}
	}

	if s.String() != before || s.Flagged() != 0 || s.Revealed() != 0 {
		t.Error("out-of-bounds calls changed the board")
	}
}

func TestFirstRevealIsSafe(t *testing.T) {
	cfg := Config{Rows: 8, Cols: 8, Mines: 20}

	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		first := Pos{rng.Intn(cfg.Rows), rng.Intn(cfg.Cols)}

		s, err := NewGame(cfg, rng)
		if err != nil {
			t.Fatalf("NewGame() error = %v", err)
		}
		v, err := s.Reveal(first.Row, first.Col)
		if err != nil {
			t.Fatalf("Reveal() error = %v", err)
		}
		if v.Outcome == Lost {
			t.Fatalf("seed %d: first reveal at %v lost", seed, first)
		}

		mines := s.Mines()
		if len(mines) != cfg.Mines {
			t.Errorf("seed %d: placed %d mines, want %d", seed, len(mines), cfg.Mines)
		}

		window := exclusionWindow(first, cfg.Rows, cfg.Cols)
		seen := make(map[Pos]bool)
		for _, m := range mines {
			if window.Contains(m) {
				t.Errorf("seed %d: mine %v inside exclusion window around %v", seed, m, first)
			}
			if seen[m] {
				t.Errorf("seed %d: duplicate mine %v", seed, m)
			}
			seen[m] = true
		}
	}
}

func TestPlacementReproducible(t *testing.T) {
	cfg := Config{Rows: 10, Cols: 10, Mines: 15}
	s1, _ := NewGame(cfg, rand.New(rand.NewSource(12345)))
	s2, _ := NewGame(cfg, rand.New(rand.NewSource(12345)))
	s1.Reveal(5, 5)
	s2.Reveal(5, 5)

	m1, m2 := s1.Mines(), s2.Mines()
	for i := range m1 {
		if m1[i] != m2[i] {
			t.Errorf("mine %d mismatch: %v != %v", i, m1[i], m2[i])
		}
	}
}

func TestPlacementFallbackOnCrowdedBoard(t *testing.T) {
	// Eight mines on a 3x3 board cannot avoid the centre's neighbours.
	s, err := NewGame(Config{Rows: 3, Cols: 3, Mines: 8}, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}

	v, _ := s.Reveal(1, 1)
	if len(s.Mines()) != 8 {
		t.Fatalf("placed %d mines, want 8", len(s.Mines()))
	}
	if v.Outcome != Won {
		t.Errorf("Outcome = %v, want Won", v.Outcome)
	}
	if got := v.Cells[1][1]; got.Display != DisplayNumber || got.Adjacent != 8 {
		t.Errorf("Cells[1][1] = %+v, want number 8", got)
	}
}

func TestFloodFillLargeOpenBoard(t *testing.T) {
	cfg := Config{Rows: 200, Cols: 200, Mines: 1}
	s, err := NewGame(cfg, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}

	v, _ := s.Reveal(0, 0)
	if v.Revealed != 200*200-1 {
		t.Errorf("Revealed = %d, want %d", v.Revealed, 200*200-1)
	}
	if v.Outcome != Won {
		t.Errorf("Outcome = %v, want Won", v.Outcome)
	}
}

func TestWinOnlyAtFullCoverage(t *testing.T) {
	cfg := Config{Rows: 6, Cols: 6, Mines: 6}
	s, _ := NewGame(cfg, rand.New(rand.NewSource(42)))
	s.Reveal(0, 0)

	mines := make(map[Pos]bool)
	for _, m := range s.Mines() {
		mines[m] = true
	}
	target := cfg.Rows*cfg.Cols - cfg.Mines

	for r := 0; r < cfg.Rows; r++ {
		for c := 0; c < cfg.Cols; c++ {
			if mines[Pos{r, c}] {
				continue
			}
			v, _ := s.Reveal(r, c)
			if (v.Outcome == Won) != (v.Revealed == target) {
				t.Fatalf("Outcome = %v with Revealed = %d of %d", v.Outcome, v.Revealed, target)
			}
		}
	}

	if s.Outcome() != Won {
		t.Errorf("Outcome() = %v, want Won", s.Outcome())
	}
	for m := range mines {
		if c, _ := s.Cell(m.Row, m.Col); c.State != Flagged {
			t.Errorf("mine %v state = %v, want flagged after win", m, c.State)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{InProgress, "in_progress"},
		{Won, "won"},
		{Lost, "lost"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.expected {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.expected)
		}
	}
}

func TestExclusionWindowClipping(t *testing.T) {
	tests := []struct {
		pos  Pos
		size int
	}{
		{Pos{0, 0}, 4},
		{Pos{0, 2}, 6},
		{Pos{2, 2}, 9},
		{Pos{4, 4}, 4},
	}

	for _, tt := range tests {
		if got := exclusionWindow(tt.pos, 5, 5).Size(); got != tt.size {
			t.Errorf("exclusionWindow(%v).Size() = %d, want %d", tt.pos, got, tt.size)
		}
	}
}
