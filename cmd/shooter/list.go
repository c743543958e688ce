package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with the id to pass to 'shooter play'.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tTitle")
	fmt.Fprintln(tw, "  --\t-----")
	for _, g := range games {
		fmt.Fprintf(tw, "  %s\t%s\n", g.ID, g.Title)
	}
	tw.Flush()

	fmt.Println()
	fmt.Println("Run 'shooter play <id>' to play a game.")
}
