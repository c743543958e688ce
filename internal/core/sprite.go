package core

// Sprite is a small grid of cells stamped onto the Buffer at an entity's
// position. Cells without a character are transparent.
type Sprite struct {
	Cells [][]Cell
}

// NewSprite builds a sprite from text rows. Spaces become transparent cells;
// every other rune is drawn with the given color and depth.
func NewSprite(rows []string, fg Color, depth float64) Sprite {
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		runes := []rune(row)
		cells[y] = make([]Cell, len(runes))
		for x, r := range runes {
			if r == ' ' {
				continue
			}
			cells[y][x] = Cell{Char: r, Fg: fg, Depth: depth}
		}
	}
	return Sprite{Cells: cells}
}

// Width returns the width of the widest row.
func (s Sprite) Width() int {
	w := 0
	for _, row := range s.Cells {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Height returns the number of rows.
func (s Sprite) Height() int {
	return len(s.Cells)
}
