package gamedata

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// GlyphSet holds the single-character glyphs for each cell display.
type GlyphSet struct {
	Hidden    string `json:"hidden"`
	Flag      string `json:"flag"`
	Mine      string `json:"mine"`
	Detonated string `json:"detonated"`
	WrongFlag string `json:"wrongFlag"`
	Empty     string `json:"empty"`
}

// ColorSet holds hex colors for each cell display and for the UI chrome.
type ColorSet struct {
	Hidden    string `json:"hidden"`
	Flag      string `json:"flag"`
	Mine      string `json:"mine"`
	Detonated string `json:"detonated"`
	WrongFlag string `json:"wrongFlag"`
	Empty     string `json:"empty"`
	Cursor    string `json:"cursor"`
	Status    string `json:"status"`
}

// ThemeDef defines how the board is drawn, loaded from JSON.
type ThemeDef struct {
	Glyphs       GlyphSet `json:"glyphs"`
	Colors       ColorSet `json:"colors"`
	NumberColors []string `json:"numberColors"` // Index 0 is the color for "1"
}

// ThemeFile represents the structure of theme.json.
type ThemeFile struct {
	Theme ThemeDef `json:"theme"`
}

// LoadTheme loads the theme from the embedded theme.json file.
func LoadTheme() (*ThemeDef, error) {
	file, err := Load[ThemeFile]("theme.json")
	if err != nil {
		return nil, err
	}
	if len(file.Theme.NumberColors) != 8 {
		return nil, errors.New("theme.json must define 8 number colors")
	}
	return &file.Theme, nil
}

// MustLoadTheme loads the theme, panicking on error.
func MustLoadTheme() *ThemeDef {
	theme, err := LoadTheme()
	if err != nil {
		panic(err)
	}
	return theme
}

// Rune returns the first character of a glyph, or '?' if it is empty.
func Rune(glyph string) rune {
	for _, r := range glyph {
		return r
	}
	return '?'
}

// Color converts a hex color to tcell.Color, falling back to white.
func Color(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// NumberColor returns the color for an adjacent-mine count of 1 to 8.
func (t *ThemeDef) NumberColor(n int) tcell.Color {
	if n < 1 || n > len(t.NumberColors) {
		return tcell.ColorWhite
	}
	return Color(t.NumberColors[n-1])
}
