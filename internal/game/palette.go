package game

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// TileStyle is how a tile of a given value is drawn.
type TileStyle struct {
	Value int
	Fg    core.Color
	Bg    core.Color
}

// Palette maps tile values to display styles. It is built once and validated;
// lookups never fail.
type Palette struct {
	styles []TileStyle
}

// DefaultStyles are the classic 2048 colours in the 256-color range.
var DefaultStyles = []TileStyle{
	{Value: 2, Fg: 239, Bg: 254},
	{Value: 4, Fg: 239, Bg: 223},
	{Value: 8, Fg: core.ColorBrightWhite, Bg: 215},
	{Value: 16, Fg: core.ColorBrightWhite, Bg: 209},
	{Value: 32, Fg: core.ColorBrightWhite, Bg: 203},
	{Value: 64, Fg: core.ColorBrightWhite, Bg: 202},
	{Value: 128, Fg: core.ColorBrightWhite, Bg: 222},
	{Value: 256, Fg: core.ColorBrightWhite, Bg: 221},
	{Value: 512, Fg: core.ColorBrightWhite, Bg: 220},
	{Value: 1024, Fg: core.ColorBrightWhite, Bg: 214},
	{Value: 2048, Fg: core.ColorBrightWhite, Bg: 226},
	{Value: 4096, Fg: core.ColorBrightWhite, Bg: 99},
	{Value: 8192, Fg: core.ColorBrightWhite, Bg: 57},
}

// ErrEmptyPalette is returned when a palette has no styles.
var ErrEmptyPalette = errors.New("game: palette is empty")

// NewPalette validates styles and builds a palette. Values must be strictly
// ascending powers of two starting at 2 or above, with valid colors.
func NewPalette(styles []TileStyle) (*Palette, error) {
	if len(styles) == 0 {
		return nil, ErrEmptyPalette
	}
	prev := 0
	for i, s := range styles {
		if s.Value < 2 || s.Value&(s.Value-1) != 0 {
			return nil, fmt.Errorf("game: palette entry %d: %d is not a power of two >= 2", i, s.Value)
		}
		if s.Value <= prev {
			return nil, fmt.Errorf("game: palette entry %d: value %d not above %d", i, s.Value, prev)
		}
		if !s.Fg.Valid() || !s.Bg.Valid() {
			return nil, fmt.Errorf("game: palette entry %d: invalid color", i)
		}
		prev = s.Value
	}
	return &Palette{styles: append([]TileStyle(nil), styles...)}, nil
}

// DefaultPalette returns the built-in palette.
func DefaultPalette() *Palette {
	p, err := NewPalette(DefaultStyles)
	if err != nil {
		panic(err)
	}
	return p
}

// Style returns the entry for the highest palette value not above value.
// Values below the first entry use the first entry.
func (p *Palette) Style(value int) TileStyle {
	style := p.styles[0]
	for _, s := range p.styles {
		if s.Value > value {
			break
		}
		style = s
	}
	return style
}
