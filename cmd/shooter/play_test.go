package main

import "testing"

func TestPlayRejectsBadInput(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		renderer   string
		difficulty string
	}{
		{"unknown game", []string{"pong"}, "bubbletea", ""},
		{"unknown renderer", nil, "ncurses", ""},
		{"unknown difficulty", nil, "tcell", "brutal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flagRenderer, flagDifficulty = tt.renderer, tt.difficulty
			t.Cleanup(func() { flagRenderer, flagDifficulty = "bubbletea", "" })

			if code := play(tt.args); code != 1 {
				t.Errorf("play(%v) = %d, expected 1", tt.args, code)
			}
		})
	}
}
