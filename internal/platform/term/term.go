// Package term runs a game directly on a tcell screen.
//
// It is the alternative to the Bubble Tea front end: a goroutine feeds
// terminal events into a channel while a ticker drives the simulation.
package term

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/platform/keyhold"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// ErrInterrupted is returned when the user quits with ctrl+c before the game
// ends on its own.
var ErrInterrupted = errors.New("term: interrupted")

// CueSink receives the gameplay cues produced by each tick.
type CueSink interface {
	Play(c core.Cue)
}

// Options configures a tcell run.
type Options struct {
	Sink   CueSink     // Optional, nil plays nothing
	Logger *log.Logger // Optional, nil discards
}

// Run plays game until it exits and returns the final game state.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return core.GameState{}, fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return core.GameState{}, fmt.Errorf("term: cannot init screen: %w", err)
	}
	defer screen.Fini()

	return run(screen, game, cfg, opts)
}

func run(screen tcell.Screen, game registry.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	interval := time.Second / time.Duration(cfg.TickRate)

	screen.HideCursor()
	screen.EnableFocus()
	screen.Clear()

	done := make(chan struct{})
	defer close(done)
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	game.Reset(cfg)
	hold := keyhold.New(keyhold.DefaultInitial, keyhold.DefaultRepeat)
	var pending []core.Event

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					logger.Info("interrupted")
					return game.State(), ErrInterrupted
				}
				if k, ok := mapKey(ev); ok {
					pending = append(pending, hold.Press(k, ev.When())...)
				}
			case *tcell.EventResize:
				w, h := ev.Size()
				pending = append(pending, core.Resize{Width: w, Height: h})
				screen.Sync()
			case *tcell.EventFocus:
				if !ev.Focused {
					pending = append(pending, hold.ReleaseAll()...)
				}
			}

		case now := <-ticker.C:
			events := append(pending, hold.Expire(now)...)
			pending = nil

			result := game.Step(events, interval)
			if opts.Sink != nil {
				for _, c := range result.Cues {
					opts.Sink.Play(c)
				}
			}
			if result.Exit {
				logger.Info("game over", "outcome", result.State.Outcome, "kills", result.State.Kills)
				return result.State, nil
			}
			draw(screen, game.Buffer(), result.State)
		}
	}
}

// mapKey translates a tcell key event to the game key it stands for.
func mapKey(ev *tcell.EventKey) (core.Key, bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return core.KeyEsc, true
	case tcell.KeyRune:
		switch k := core.Key(string(ev.Rune())); k {
		case core.KeyUp, core.KeyLeft, core.KeyDown, core.KeyRight, core.KeyFire:
			return k, true
		}
	}
	return "", false
}

// draw shows the HUD on the first row and the playfield below it.
func draw(screen tcell.Screen, buf *core.Buffer, state core.GameState) {
	screen.Clear()

	hud := fmt.Sprintf(" Kills: %d  Progress: %3.0f%% ", state.Kills, state.Progress)
	hudStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(14)).Bold(true)
	for i, r := range []rune(hud) {
		screen.SetContent(i, 0, r, nil, hudStyle)
	}

	if buf != nil {
		for y := 0; y < buf.Height(); y++ {
			for x := 0; x < buf.Width(); x++ {
				cell := buf.Get(x, y)
				r := ' '
				if cell.HasChar() {
					r = cell.Char
				}
				screen.SetContent(x, y+1, r, nil, styleOf(cell))
			}
		}
	}
	screen.Show()
}

// styleOf converts cell colors to a tcell style.
func styleOf(c core.Cell) tcell.Style {
	style := tcell.StyleDefault
	if !c.HasChar() {
		return style
	}
	if n, ok := c.Fg.ANSI(); ok {
		style = style.Foreground(tcell.PaletteColor(n))
	}
	if n, ok := c.Bg.ANSI(); ok {
		style = style.Background(tcell.PaletteColor(n))
	}
	return style
}
