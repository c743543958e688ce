package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/platform/keyhold"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// CueSink receives the gameplay cues produced by each tick.
type CueSink interface {
	Play(c core.Cue)
}

// Options configures a Bubble Tea run.
type Options struct {
	Sink   CueSink     // Optional, nil plays nothing
	Logger *log.Logger // Optional, nil discards
}

var (
	hudStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	fieldStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Model is the Bubble Tea model running a game.
type Model struct {
	game    registry.Game
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	hold    *keyhold.Tracker
	pending []core.Event
	state   core.GameState
	sink    CueSink
	log     *log.Logger
	clock   func() time.Time

	width, height int
	started       bool
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:   game,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		hold:   keyhold.New(keyhold.DefaultInitial, keyhold.DefaultRepeat),
		sink:   opts.Sink,
		log:    logger,
		clock:  time.Now,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: state will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		m.pending = append(m.pending, m.hold.ReleaseAll()...)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues game keys for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.log.Info("interrupted")
		m.quitting = true
		return m, tea.Quit
	}

	k, ok := m.keys.MapKey(msg)
	if !ok {
		return m, nil
	}
	m.pending = append(m.pending, m.hold.Press(k, m.clock())...)
	return m, nil
}

// handleResize records the terminal size and forwards it to the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.pending = append(m.pending, core.Resize{Width: msg.Width, Height: msg.Height})
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the
// previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	events := append(m.pending, m.hold.Expire(now)...)
	m.pending = nil

	result := m.game.Step(events, tickInterval(m.config.TickRate))
	m.state = result.State
	m.started = true

	if m.sink != nil {
		for _, c := range result.Cues {
			m.sink.Play(c)
		}
	}

	if result.Exit {
		m.log.Info("game over", "outcome", result.State.Outcome, "kills", result.State.Kills)
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	buf := m.game.Buffer()
	if !m.started || buf == nil {
		return "loading..."
	}

	var sb strings.Builder
	sb.WriteString(hudStyle.Render(hudLine(m.state)))
	sb.WriteRune('\n')
	sb.WriteString(fieldStyle.Render(RenderBuffer(buf)))
	sb.WriteRune('\n')

	// Border adds two cells each way, the HUD and help lines one row each.
	if m.width > 0 && (m.width < buf.Width()+2 || m.height < buf.Height()+4) {
		sb.WriteString(warningStyle.Render(fmt.Sprintf(
			"terminal %dx%d is smaller than the %dx%d playfield", m.width, m.height, buf.Width()+2, buf.Height()+4)))
		sb.WriteRune('\n')
	}
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// hudLine summarizes the game state above the playfield.
func hudLine(s core.GameState) string {
	return fmt.Sprintf(" Kills: %d  Progress: %3.0f%% ", s.Kills, s.Progress)
}

// Run plays game until it exits or the user interrupts, and returns the
// final game state.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (core.GameState, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithReportFocus(),
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return game.State(), nil
}
