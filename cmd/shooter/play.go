package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/logging"
	"github.com/vovakirdan/tui-shooter/internal/platform/audio"
	platterm "github.com/vovakirdan/tui-shooter/internal/platform/term"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var (
	flagRenderer string
	flagSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: shooter).

Controls:
  W/A/S/D    - Move
  Space      - Fire (hold for auto-fire)
  Esc        - Quit the level
  Ctrl+C     - Quit immediately

Difficulty options:
  easy   - Start at lowest difficulty, faster reload, fewer enemies
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, slower reload, more enemies
  fixed  - No progression, stays at config's initial level

Renderers:
  bubbletea - Bordered playfield with HUD and help line (default)
  tcell     - Raw full-screen cell grid

Environment:
  SHOOTER_LOG_LEVEL - Log level when --log-level is not given
  SHOOTER_VOLUME    - Sound volume from 0 to 1 (default 0.5)

Examples:
  shooter play
  shooter play --difficulty easy
  shooter play --renderer tcell --sound
  shooter play --config ./my-shooter.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRenderer, "renderer", "bubbletea", "Renderer: bubbletea, tcell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
}

func runPlay(cmd *cobra.Command, args []string) {
	if code := play(args); code != 0 {
		os.Exit(code)
	}
}

// play runs a game and returns the process exit code. Deferred closes of the
// log file and the speaker run before the caller exits.
func play(args []string) int {
	gameID := "shooter"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'shooter list' to see available games.")
		return 1
	}
	if flagRenderer != "bubbletea" && flagRenderer != "tcell" {
		fmt.Fprintf(os.Stderr, "Error: unknown renderer %q (want bubbletea or tcell)\n", flagRenderer)
		return 1
	}
	if err := checkPreset(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	level, err := logging.ResolveLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger, closer, err := logging.Open(flagLogFile, level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	} else {
		logger.Warn("cannot read terminal size", "err", termErr, "assumed", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	}

	// Set config path and difficulty before creation
	shooter.SetConfigPath(flagConfig)
	shooter.SetDifficultyPreset(flagDifficulty)
	shooter.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	logger.Info("starting game", "game", gameID, "renderer", flagRenderer,
		"screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH), "fps", flagFPS, "seed", flagSeed)

	player := openSound(logger)
	if player != nil {
		defer player.Close()
	}

	var state core.GameState
	switch flagRenderer {
	case "tcell":
		opts := platterm.Options{Logger: logger}
		if player != nil {
			opts.Sink = player
		}
		state, err = platterm.Run(game, cfg, opts)
	default:
		opts := tui.Options{Logger: logger}
		if player != nil {
			opts.Sink = player
		}
		state, err = tui.Run(game, cfg, opts)
	}

	if err != nil && !errors.Is(err, platterm.ErrInterrupted) {
		logger.Error("run failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		return 1
	}
	logger.Info("game finished", "outcome", state.Outcome, "kills", state.Kills, "ticks", state.Ticks)
	printSummary(state)
	return 0
}

// openSound starts the speaker when --sound is set. Sound is optional, so a
// failure is logged and the game runs silently.
func openSound(logger *log.Logger) *audio.Player {
	if !flagSound {
		return nil
	}
	player := audio.NewPlayer(config.GetEnvFloat("SHOOTER_VOLUME", 0.5))
	if err := player.Initialize(); err != nil {
		logger.Warn("sound disabled", "err", err)
		return nil
	}
	return player
}

func checkPreset(preset string) error {
	switch config.DifficultyPreset(preset) {
	case "", config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		return nil
	}
	return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", preset)
}

func printSummary(s core.GameState) {
	switch s.Outcome {
	case core.OutcomeLevelComplete:
		fmt.Println("Level complete!")
	case core.OutcomeDestroyed:
		fmt.Println("Your ship was destroyed.")
	case core.OutcomeQuit:
		fmt.Println("Level abandoned.")
	default:
		fmt.Println("Game interrupted.")
	}
	fmt.Printf("Kills: %d  Progress: %.0f%%\n", s.Kills, s.Progress)
}
