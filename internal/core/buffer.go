package core

import (
	"math"
	"strings"
)

// Cell is a single character position in a Buffer or Sprite.
type Cell struct {
	Char  rune // 0 means no character (transparent in sprites, empty in buffers)
	Fg    Color
	Bg    Color
	Depth float64 // Lower values are drawn in front
}

// EmptyCell returns a cell with no character at the farthest depth.
func EmptyCell() Cell {
	return Cell{Depth: math.MaxFloat64}
}

// HasChar reports whether the cell carries a character.
func (c Cell) HasChar() bool {
	return c.Char != 0
}

// Buffer is the depth-tested character grid the game composites into each
// tick. Its size is fixed at creation.
type Buffer struct {
	width  int
	height int
	cells  [][]Cell
}

// NewBuffer creates a cleared buffer with the given dimensions.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{
		width:  width,
		height: height,
	}
	b.cells = make([][]Cell, height)
	for y := range b.cells {
		b.cells[y] = make([]Cell, width)
	}
	b.Clear()
	return b
}

// Width returns the buffer width in characters.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in characters.
func (b *Buffer) Height() int {
	return b.height
}

// Clear resets every cell to empty at maximum depth.
func (b *Buffer) Clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = EmptyCell()
		}
	}
}

// Get returns the cell at the given position.
// Returns an empty cell for out-of-bounds coordinates.
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return EmptyCell()
	}
	return b.cells[y][x]
}

// Blit composites a sprite whose origin sits at the given position.
//
// Each sprite cell with a character lands at (round(at.X)+col, round(at.Y)+row)
// with depth at.Z + cell.Depth. Cells that fall outside the buffer are
// clipped individually. A cell is written only when it is strictly closer
// than what the buffer already holds; on equal depth the existing cell stays.
func (b *Buffer) Blit(s *Sprite, at Vec3) {
	if s == nil {
		return
	}
	ox := int(math.Round(at.X))
	oy := int(math.Round(at.Y))

	for row, line := range s.Cells {
		for col, src := range line {
			if !src.HasChar() {
				continue
			}
			x, y := ox+col, oy+row
			if !b.inBounds(x, y) {
				continue
			}
			depth := at.Z + src.Depth
			if b.cells[y][x].Depth <= depth {
				continue
			}
			b.cells[y][x] = Cell{
				Char:  src.Char,
				Fg:    src.Fg,
				Bg:    src.Bg,
				Depth: depth,
			}
		}
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Row returns the specified row as a string, empty cells as spaces.
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.height {
		return strings.Repeat(" ", b.width)
	}
	var sb strings.Builder
	sb.Grow(b.width)
	for _, c := range b.cells[y] {
		if c.HasChar() {
			sb.WriteRune(c.Char)
		} else {
			sb.WriteRune(' ')
		}
	}
	return sb.String()
}

// String converts the buffer to plain text, rows joined with newlines.
func (b *Buffer) String() string {
	var sb strings.Builder
	sb.Grow(b.width*b.height + b.height)

	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(b.Row(y))
	}
	return sb.String()
}
