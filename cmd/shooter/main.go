// shooter is a side-scrolling shooter played in the terminal.
//
// Usage:
//
//	shooter list             - List available games
//	shooter play [game]      - Play a game (default: shooter)
//	shooter config           - Print the effective game config as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load game config from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs here (default: ~/.arcade/shooter.log)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Side Shooter - fly, shoot and survive in your terminal",
	Long: `Side Shooter is a side-scrolling arcade shooter for the terminal.
Fly through the level, shoot the enemies drifting in from the right
and reach the end without being hit.

Available commands:
  list     - Show all available games
  play     - Play a game
  config   - Print the effective game config

Examples:
  shooter play
  shooter play --difficulty hard --renderer tcell
  shooter play --config ./my-shooter.yaml --sound
  shooter config --difficulty easy > my-shooter.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/shooter.log", "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default $SHOOTER_LOG_LEVEL or warn)")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
