// breaker is a terminal brick breaker built on pixel-stepped collision
// against destructible brick grids.
//
// Usage:
//
//	breaker                   - Start the game picker menu
//	breaker list              - List available games
//	breaker play <game>       - Play a game
//	breaker scores <game>     - Show high scores for a game
//	breaker levels ...        - Manage level files and stored level packs
//	breaker simulate          - Run a headless breakout game and print a summary
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.breaker/scores.db)
//	--log-level <lvl>   - debug, info, warn or error (default: warn)
//	--log-file <path>   - Write logs to a file while the terminal UI runs
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breaker/internal/core"
	_ "github.com/vovakirdan/tui-breaker/internal/games/breakout"
	_ "github.com/vovakirdan/tui-breaker/internal/games/jump"
	"github.com/vovakirdan/tui-breaker/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	logger  = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "breaker"})
	logFile *os.File
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
	Use:   "breaker",
	Short: "Breaker - a brick breaker for your terminal",
	Long: `Breaker is a brick breaker played in the terminal. Bricks live in
grids that shrink as they are destroyed; levels can be loaded from YAML or
JSON files and stored as packs in the scores database.

Examples:
  breaker
  breaker play breakout
  breaker play breakout --levels ./my-levels
  breaker levels import ./my-levels --name mine
  breaker simulate --seed 42 --ticks 5000`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breaker/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setupLogging applies --log-level and --log-file to the shared logger and
// makes it the package default so game packages log through it.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger.SetOutput(f)
	}

	log.SetDefault(logger)
	return nil
}

// logOutput is where logs go outside the terminal UI.
func logOutput() io.Writer {
	if logFile != nil {
		return logFile
	}
	return os.Stderr
}

// quietForTUI stops log output from drawing over the terminal UI unless it
// goes to a file.
func quietForTUI() {
	if logFile == nil {
		logger.SetOutput(io.Discard)
	}
}

// openStore opens the scores database. Failure is logged and yields nil so
// games still run without storage.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("Scores database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}
