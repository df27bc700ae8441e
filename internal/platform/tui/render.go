package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// colorPair is the cache key for a foreground/background combination.
type colorPair struct {
	fg, bg core.Color
}

// styleCache holds lipgloss styles per color pair. Screens only ever use a
// handful of pairs (palette entries plus chrome), so it stays small.
type styleCache map[colorPair]lipgloss.Style

func (c styleCache) get(fg, bg core.Color) lipgloss.Style {
	key := colorPair{fg, bg}
	if s, ok := c[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if fg.Valid() && fg != core.ColorDefault {
		s = s.Foreground(ansiColor(fg))
	}
	if bg.Valid() && bg != core.ColorDefault {
		s = s.Background(ansiColor(bg))
	}
	c[key] = s
	return s
}

// ansiColor converts a core color code into a lipgloss ANSI color.
func ansiColor(c core.Color) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(int(c)))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(styleCache)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
