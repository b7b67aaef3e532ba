// shift is a terminal puzzle game about restoring a shifted work schedule.
//
// Usage:
//
//	shift                    - Open the lobby and play
//	shift play               - Same as above
//	shift scores             - Show the high-score table
//	shift serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible boards
//	--db <path>            - Set database path (default: ~/.shift/scores.db)
//	--config <path>        - Load a custom shift.yaml
//	--difficulty <preset>  - easy, normal, hard, fixed
//	--debug                - Write a debug log to ~/.shift/shift.log
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shift-shift/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool

	// Set up by loadSettings before any command runs
	shiftConfig config.ShiftConfig
	logger      *log.Logger
	logFile     *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shift",
	Short: "Shift/Shift - restore the schedule before the shift ends",
	Long: `Shift/Shift is a terminal puzzle game. Memorize a schedule of shifts,
watch it get scrambled by row and column rotations, then drag it back.

Available commands:
  play     - Open the lobby and play (default)
  scores   - View the high-score table
  serve    - Start SSH server for remote play

Examples:
  shift
  shift play --difficulty hard
  shift scores
  shift serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shift/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom shift config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.shift/shift.log")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadSettings resolves the game configuration and the logger. An invalid
// configuration stops the program here.
func loadSettings(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, err := config.LoadShift(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyShiftPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}
	shiftConfig = cfg

	logger, err = newLogger(cmd.Name() == serveCmd.Name())
	return err
}

// newLogger builds the process logger. The server logs to stderr; local
// play owns the terminal, so it logs to a file only with --debug.
func newLogger(server bool) (*log.Logger, error) {
	opts := log.Options{ReportTimestamp: true, Prefix: "shift"}
	if flagDebug {
		opts.Level = log.DebugLevel
	}

	if server {
		opts.Prefix = "shift-ssh"
		return log.NewWithOptions(os.Stderr, opts), nil
	}

	if !flagDebug {
		return log.NewWithOptions(io.Discard, opts), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	path := filepath.Join(home, ".shift", "shift.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	logFile, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return log.NewWithOptions(logFile, opts), nil
}
