package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breaker/internal/config"
	"github.com/vovakirdan/tui-breaker/internal/core"
	"github.com/vovakirdan/tui-breaker/internal/games/breakout"
	"github.com/vovakirdan/tui-breaker/internal/games/jump"
	"github.com/vovakirdan/tui-breaker/internal/levels"
	"github.com/vovakirdan/tui-breaker/internal/platform/tui"
	"github.com/vovakirdan/tui-breaker/internal/registry"
	"github.com/vovakirdan/tui-breaker/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagPack       string
	flagStartLevel int
)

// errBackedOut means the player left a picker without choosing.
var errBackedOut = errors.New("no selection")

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Move
  Space/Up         - Launch the ball / start falling
  C                - Clear all balls in play
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Screenshot to ~/.breaker/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy, normal, hard

Examples:
  breaker play breakout
  breaker play breakout_endless --difficulty hard
  breaker play breakout --levels ./levels --level 2
  breaker play breakout --pack mine
  breaker play jump --config ./my-jump.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Level file or directory (YAML or JSON)")
	playCmd.Flags().StringVar(&flagPack, "pack", "", "Level pack stored in the scores database")
	playCmd.Flags().IntVar(&flagStartLevel, "level", 0, "First level, 1-based (0 = choose from a menu)")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'breaker list' to see available games", gameID)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	err := configureGame(gameID, store, cfg.ScreenW)
	if errors.Is(err, errBackedOut) {
		return nil
	}
	if err != nil {
		return err
	}
	return playGame(gameID, store, cfg)
}

// configureGame applies the play flags to the game package before the game
// is created.
func configureGame(gameID string, store *storage.Store, width int) error {
	switch gameID {
	case "breakout", "breakout_endless":
		breakout.SetConfigPath(flagConfig)
		breakout.SetDifficultyPreset(flagDifficulty)
		breakout.SetLevelsPath(flagLevels)
		breakout.SetLevels(nil)

		if flagPack != "" {
			if store == nil {
				return fmt.Errorf("level pack %q needs the scores database", flagPack)
			}
			ls, err := store.LoadLevelPack(flagPack)
			if err != nil {
				return err
			}
			breakout.SetLevels(ls)
		}

		if flagStartLevel > 0 {
			breakout.SetStartLevel(flagStartLevel - 1)
			return nil
		}
		index, ok, err := tui.RunLevelMenu(levelNames(store), width)
		if err != nil {
			return err
		}
		if !ok {
			return errBackedOut
		}
		breakout.SetStartLevel(index)

	case "jump":
		jump.SetConfigPath(flagConfig)
		jump.SetDifficultyPreset(flagDifficulty)
	}
	return nil
}

// levelNames lists the names of the levels the breakout game will play.
func levelNames(store *storage.Store) []string {
	var ls []levels.Level
	switch {
	case flagPack != "" && store != nil:
		ls, _ = store.LoadLevelPack(flagPack)
	case flagLevels != "":
		ls = levels.LoadOrEmpty(flagLevels, logger)
	default:
		cfg, err := config.LoadBreakout(flagConfig)
		if err != nil {
			cfg = config.DefaultBreakoutConfig()
		}
		ls = breakout.BuiltinLevels(cfg)
	}

	names := make([]string, len(ls))
	for i, l := range ls {
		names[i] = l.Name
	}
	return names
}

// playGame runs one game in the terminal UI.
func playGame(gameID string, store *storage.Store, cfg core.RuntimeConfig) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	quietForTUI()
	defer logger.SetOutput(logOutput())

	if err := tui.Run(game, store, logger, cfg); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
