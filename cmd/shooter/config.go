package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Prints the shooter config as YAML after applying --config and
--difficulty, the same way 'shooter play' would load it.

Save the output, edit it and pass it back with --config.

Examples:
  shooter config
  shooter config --difficulty hard
  shooter config --defaults > shooter.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefaults {
		fmt.Print(string(config.GetDefaultYAML()))
		return
	}

	if err := checkPreset(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.LoadShooter(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyShooterPreset(&cfg, config.DifficultyPreset(flagDifficulty))

	data, err := config.MarshalShooter(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
