package shooter

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/ecs"
)

// LevelEventKind enumerates level lifecycle notifications.
type LevelEventKind int

const (
	LevelStart LevelEventKind = iota
	LevelEnd
	RootSpawned
)

// LevelEvent drives the level lifecycle. Root is set for RootSpawned only.
type LevelEvent struct {
	Kind LevelEventKind
	Root ecs.Entity
}

func (e LevelEvent) String() string {
	switch e.Kind {
	case LevelStart:
		return "level start"
	case LevelEnd:
		return "level end"
	case RootSpawned:
		return fmt.Sprintf("root spawned(%d)", e.Root)
	default:
		return "unknown level event"
	}
}
