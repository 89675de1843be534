// arkanoid plays the brick breaker in the terminal, headless or over SSH.
//
// Usage:
//
//	arkanoid list              - List game modes and levels
//	arkanoid play              - Pick a mode in the menu and play
//	arkanoid sim               - Run a game headless with the autopilot
//	arkanoid serve             - Start SSH server for remote play
//	arkanoid scores [mode]     - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Recorded with runs; the simulation is deterministic
//	--db <path>           - Set database path (default: ~/.arkanoid/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: warn)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arkanoid/internal/games/breakout"
	"github.com/vovakirdan/arkanoid/internal/physics"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Shared by play, sim and serve
	flagConfig     string
	flagDifficulty string
	flagLevelSet   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break bricks in your terminal",
	Long: `Arkanoid is a brick breaker for the terminal. Balls bounce off the
court walls, the blocks and your paddle; clear the blocks of every level
before you run out of lives.

Examples:
  arkanoid play
  arkanoid play --endless --difficulty hard
  arkanoid sim --ticks 3600 --log-level info
  arkanoid serve --ssh :2222
  arkanoid scores`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		if flagFPS <= 0 {
			return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
		}
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:           level,
			ReportTimestamp: true,
			Prefix:          "arkanoid",
		})
		return nil
	},
}

// logger is configured from --log-level before any command runs.
var logger = log.New(os.Stderr)

// applyGameFlags hands the shared game flags to the breakout package.
// Engine logging is wired only where the terminal is not in use.
func applyGameFlags(headless bool) {
	breakout.SetConfigPath(flagConfig)
	breakout.SetDifficultyPreset(flagDifficulty)
	breakout.SetLevelSetPath(flagLevelSet)
	if headless {
		breakout.SetLogger(logger)
		physics.SetLogger(logger.WithPrefix("physics"))
	}
}

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom arkanoid config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagLevelSet, "levels", "", "Path to a YAML level set (default: built-in levels)")
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed stored with saved runs")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arkanoid/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	addGameFlags(playCmd)
	addGameFlags(simCmd)
	addGameFlags(serveCmd)

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
