package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arkanoid/internal/core"
	"github.com/vovakirdan/arkanoid/internal/platform/tui"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

var (
	flagEndless bool
	flagLevel   int
	flagPlayer  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Arkanoid",
	Long: `Open the menu to pick a mode, then play. Leaving a game with B returns
to the menu.

Controls:
  Left/Right, A/D   - Move the paddle
  P/Space/Esc       - Pause
  R                 - Restart (after game over)
  B                 - Back to menu
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Difficulty options (endless mode speeds up with them):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arkanoid play
  arkanoid play --level 3
  arkanoid play --endless --difficulty hard
  arkanoid play --levels ./my-levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Skip the menu and play endless mode")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Skip the menu and start the campaign at this level (1-based)")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with your scores (default: OS user)")
}

func runPlay(_ *cobra.Command, _ []string) {
	applyGameFlags(false)

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	player := flagPlayer
	if player == "" {
		if u, uerr := user.Current(); uerr == nil {
			player = u.Username
		}
	}

	var direct *tui.Selection
	switch {
	case flagEndless:
		direct = &tui.Selection{Choice: tui.ChoiceEndless}
	case flagLevel > 0:
		direct = &tui.Selection{Choice: tui.ChoiceCampaign, Level: flagLevel - 1}
	}

	for {
		var sel tui.Selection
		if direct != nil {
			sel, direct = *direct, nil
		} else {
			sel, cfg, err = tui.RunMenu(cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}

		switch sel.Choice {
		case tui.ChoiceQuit, tui.ChoiceNone:
			return
		case tui.ChoiceScores:
			back, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !back {
				return
			}
			continue
		}

		toMenu, runErr := tui.Run(sel.NewGame(), store, player, cfg)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
		if !toMenu {
			return
		}
	}
}
