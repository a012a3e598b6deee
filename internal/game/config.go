package game

import (
	"fmt"
	"strconv"

	"github.com/samdwyer/minesweep/internal/board"
)

// Environment variables read by LoadConfig.
const (
	EnvRows          = "MINESWEEP_ROWS"
	EnvCols          = "MINESWEEP_COLS"
	EnvMines         = "MINESWEEP_MINES"
	EnvSeed          = "MINESWEEP_SEED"
	EnvUncappedFlags = "MINESWEEP_UNCAPPED_FLAGS"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible mine layouts
	// across a run. A seed of 0 means a random seed will be generated.
	Seed int64

	Rows  int
	Cols  int
	Mines int

	// UncappedFlags allows more flags than mines.
	UncappedFlags bool
}

// DefaultConfig returns a 12x12 board with 30 mines.
func DefaultConfig() Config {
	return Config{
		Rows:  12,
		Cols:  12,
		Mines: 30,
	}
}

// Board returns the engine configuration for a new session.
func (c Config) Board() board.Config {
	return board.Config{
		Rows:          c.Rows,
		Cols:          c.Cols,
		Mines:         c.Mines,
		UncappedFlags: c.UncappedFlags,
	}
}

// LoadConfig builds a Config from DefaultConfig overridden by environment
// variables. getenv is usually os.Getenv.
func LoadConfig(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvRows, &cfg.Rows},
		{EnvCols, &cfg.Cols},
		{EnvMines, &cfg.Mines},
	}
	for _, v := range ints {
		raw := getenv(v.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", v.name, err)
		}
		*v.dst = n
	}

	if raw := getenv(EnvSeed); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if raw := getenv(EnvUncappedFlags); raw != "" {
		uncapped, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvUncappedFlags, err)
		}
		cfg.UncappedFlags = uncapped
	}

	if err := cfg.Board().Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
