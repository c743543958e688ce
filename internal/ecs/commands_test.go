package ecs

import "testing"

func TestCommandsDeferSpawn(t *testing.T) {
	w := NewWorld()
	names := NewStore(w, nameType, "name")
	cmd := NewCommands(w)

	e := cmd.Spawn(None, func(e Entity) { names.Set(e, "level") })

	if w.Alive(e) || names.Has(e) {
		t.Fatal("spawn should not take effect before Apply")
	}
	if len(cmd.ops) != 1 {
		t.Errorf("queued %d ops, expected 1", len(cmd.ops))
	}

	cmd.Apply()

	if !w.Alive(e) || *names.Get(e) != "level" {
		t.Error("spawn should take effect after Apply")
	}
	if len(cmd.ops) != 0 {
		t.Error("Apply should clear the queue")
	}
}

func TestCommandsSpawnChildOfPendingParent(t *testing.T) {
	w := NewWorld()
	cmd := NewCommands(w)

	root := cmd.Spawn(None, nil)
	child := cmd.Spawn(root, nil)
	cmd.Apply()

	if p, ok := w.Parent(child); !ok || p != root {
		t.Errorf("child parent = %d, expected %d", p, root)
	}
}

func TestCommandsDropOrphanSpawn(t *testing.T) {
	w := NewWorld()
	cmd := NewCommands(w)
	root := w.Spawn(None)

	cmd.DespawnRecursive(root)
	child := cmd.Spawn(root, nil)
	cmd.Apply()

	if w.Alive(child) || w.Len() != 0 {
		t.Error("child of a despawned parent should not be created")
	}
}

func TestCommandsDoubleDespawn(t *testing.T) {
	w := NewWorld()
	cmd := NewCommands(w)
	e := w.Spawn(None)

	cmd.Despawn(e)
	cmd.Despawn(e)
	cmd.Apply()

	if w.Alive(e) {
		t.Error("entity should be despawned")
	}
}
