package tui

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

func TestRenderBufferText(t *testing.T) {
	b := core.NewBuffer(6, 2)
	ship := core.NewSprite([]string{"]o>"}, core.ColorBrightCyan, 0)
	shot := core.NewSprite([]string{"-"}, core.ColorBrightYellow, 1)
	b.Blit(&ship, core.V3(0, 0, 0))
	b.Blit(&shot, core.V3(4, 1, 0))

	// Tests run without a terminal, so lipgloss emits no escape sequences.
	if got, expected := RenderBuffer(b), b.String(); got != expected {
		t.Errorf("RenderBuffer() = %q, expected %q", got, expected)
	}
}

func TestPairOfEmptyCell(t *testing.T) {
	if p := pairOf(core.EmptyCell()); p != (colorPair{}) {
		t.Errorf("pairOf(empty) = %v, expected default colors", p)
	}
	c := core.Cell{Char: 'x', Fg: core.ColorRed, Bg: core.ColorBlue}
	if p := pairOf(c); p.fg != core.ColorRed || p.bg != core.ColorBlue {
		t.Errorf("pairOf(%v) = %v", c, p)
	}
}
