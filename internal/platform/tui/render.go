package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

type colorPair struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per color pair seen so far.
type styleCache map[colorPair]lipgloss.Style

func (c styleCache) style(p colorPair) lipgloss.Style {
	if s, ok := c[p]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if n, ok := p.fg.ANSI(); ok {
		s = s.Foreground(lipgloss.Color(strconv.Itoa(n)))
	}
	if n, ok := p.bg.ANSI(); ok {
		s = s.Background(lipgloss.Color(strconv.Itoa(n)))
	}
	c[p] = s
	return s
}

var styles = styleCache{}

// RenderBuffer converts a Buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderBuffer(b *core.Buffer) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(b.Width()*b.Height()*2 + b.Height())

	for y := range b.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < b.Width() {
			start := pairOf(b.Get(x, y))

			var run strings.Builder
			for x < b.Width() {
				cell := b.Get(x, y)
				if pairOf(cell) != start {
					break
				}
				if cell.HasChar() {
					run.WriteRune(cell.Char)
				} else {
					run.WriteRune(' ')
				}
				x++
			}

			if start == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styles.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

// pairOf returns the colors a cell is drawn with. Empty cells use the
// terminal defaults.
func pairOf(c core.Cell) colorPair {
	if !c.HasChar() {
		return colorPair{}
	}
	return colorPair{fg: c.Fg, bg: c.Bg}
}
