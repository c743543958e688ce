package shooter

import (
	"sort"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// render draws every sprite relative to the frame, in entity order.
func (g *Game) render() {
	var camera core.Vec3
	if !g.w.frames.Empty() {
		if _, frame, ok := g.frameBody(); ok {
			camera = frame.At
		}
	}

	entities := g.w.sprites.Entities()
	sort.Slice(entities, func(i, j int) bool { return entities[i] < entities[j] })

	for _, e := range entities {
		at, err := g.w.global(e)
		if err != nil {
			g.logPlacement(e, err)
			continue
		}
		g.buf.Blit(g.w.sprites.Get(e), at.Sub(camera))
	}
}
