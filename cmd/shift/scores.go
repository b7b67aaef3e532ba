package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/shift-shift/internal/platform/tui"
	"github.com/vovakirdan/shift-shift/internal/storage"
)

var (
	flagScoresPlayer string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score table",
	Long: `Display the top 10 shifts across all managers, or every shift of one
manager with --player.

Examples:
  shift scores
  shift scores --player ABC
  shift scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show every shift of one manager")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores (asks for confirmation)")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		return clearScores(store)
	case flagScoresPlayer != "":
		return printPlayer(store, strings.ToUpper(flagScoresPlayer))
	}

	scores, err := store.TopScores(tui.TopScoreLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Shift/Shift")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No shifts recorded yet.")
		fmt.Println()
		fmt.Println("Run 'shift play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-9s  %-10s  %s\n", "Rank", "Manager", "Max Level", "Score", "Date")
	fmt.Printf("  %-4s  %-7s  %-9s  %-10s  %s\n", "----", "-------", "---------", "-----", "----")
	for _, row := range tui.ScoreRows(scores) {
		fmt.Printf("  %-4s  %-7s  %-9s  %-10s  %s\n", row[0], row[1], row[2], row[3], row[4])
	}

	return nil
}

func printPlayer(store *storage.Store, name string) error {
	p, err := store.Player(name)
	if err != nil {
		return fmt.Errorf("error retrieving player: %w", err)
	}
	scores, err := store.PlayerScores(name)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}
	best, err := store.PersonalBest(name)
	if err != nil {
		return fmt.Errorf("error retrieving personal best: %w", err)
	}

	fmt.Printf("Manager %s\n", name)
	fmt.Printf("Training done: %v  |  Max level: %d  |  Best: %d\n", p.HasPlayed, p.MaxLevel, best)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No shifts recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-9s  %-10s  %s\n", "Date", "Max Level", "Score", "Session")
	for _, s := range scores {
		fmt.Printf("  %-16s  %-9d  %-10d  %s\n", s.CreatedAt.Format("2006-01-02 15:04"), s.MaxLevel, s.Score, s.SessionID)
	}
	return nil
}

func clearScores(store *storage.Store) error {
	fmt.Print("Delete every recorded shift? Type 'yes' to confirm: ")
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if strings.TrimSpace(answer) != "yes" {
		fmt.Println("Aborted.")
		return nil
	}
	if err := store.ClearScores(); err != nil {
		return err
	}
	fmt.Println("Scores cleared.")
	return nil
}
