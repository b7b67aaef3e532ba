package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shift-shift/internal/core"
	"github.com/vovakirdan/shift-shift/internal/platform/tui"
	"github.com/vovakirdan/shift-shift/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the lobby and play",
	Long: `Clock in with three-letter initials and restore the schedule.

First-time managers go through a short training round. Pick
"Redo tutorial" in the lobby to take it again.

Controls:
  Mouse drag          - Shift a row or column
  Arrows / hjkl       - Move the cursor
  Shift+Arrows / HJKL - Shift the cursor's row or column
  Space / PEEK button - Peek at the goal schedule
  Enter               - Confirm training dialogs
  Tab                 - Skip training
  R                   - Reset the level
  X / Esc             - End the shift
  Q / Ctrl+C          - Quit

Examples:
  shift play
  shift play --player ABC
  shift play --difficulty hard
  shift play --config ./my-shift.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Pre-fill the lobby initials")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(shiftConfig, store, logger, cfg, flagPlayer)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
