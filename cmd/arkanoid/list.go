package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/games/breakout"
	"github.com/vovakirdan/arkanoid/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and levels",
	Long:  `Shows the registered game modes and the levels a campaign plays.`,
	Run:   runList,
}

func init() {
	listCmd.Flags().StringVar(&flagLevelSet, "levels", "", "Path to a YAML level set (default: built-in levels)")
}

func runList(_ *cobra.Command, _ []string) {
	breakout.SetLevelSetPath(flagLevelSet)
	breakout.SetLogger(logger)

	modes := registry.List()
	width := 2
	for _, g := range modes {
		width = max(width, len(g.ID))
	}

	fmt.Println("Modes:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", width, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", width, "--", "-----")
	for _, g := range modes {
		fmt.Printf("  %-*s  %s\n", width, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Levels:")
	fmt.Println()
	for i, name := range breakout.LevelNames() {
		fmt.Printf("  %2d. %s\n", i+1, name)
	}

	fmt.Println()
	fmt.Println("Run 'arkanoid play' to start, or 'arkanoid play --level N' to skip the menu.")
}
