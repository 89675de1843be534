package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/registry"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the best runs of a game mode, or of every mode when none is given.

Examples:
  arkanoid scores
  arkanoid scores arkanoid_endless --limit 20
  arkanoid scores arkanoid --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores of the given mode")
}

func runScores(_ *cobra.Command, args []string) {
	modes := registry.List()
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'arkanoid list' to see available modes.")
			os.Exit(1)
		}
		modes = []registry.GameInfo{{ID: args[0], Title: registry.Title(args[0])}}
	} else if flagScoresClear {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a mode")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(modes[0].ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s\n", modes[0].Title)
		return
	}

	for i, mode := range modes {
		if i > 0 {
			fmt.Println()
		}
		if err := printScores(store, mode); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
	}
}

func printScores(store *storage.Store, mode registry.GameInfo) error {
	runs, err := store.TopScores(mode.ID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", mode.Title)
	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-14s  %-8s  %-5s  %-6s  %s\n", "Rank", "Player", "Score", "Level", "Result", "Date")
	fmt.Printf("  %-4s  %-14s  %-8s  %-5s  %-6s  %s\n", "----", "------", "-----", "-----", "------", "----")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		result := "lost"
		if r.Won {
			result = "won"
		}
		fmt.Printf("  %-4d  %-14s  %-8d  %-5d  %-6s  %s\n",
			i+1, player, r.Score, r.Level, result, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(mode.ID)
	if err != nil {
		return err
	}
	fmt.Printf("\nBest: %d  |  Games: %d  |  Wins: %d  |  Average: %.0f\n",
		stats.HighScore, stats.GamesCount, stats.Wins, stats.AvgScore)
	return nil
}
