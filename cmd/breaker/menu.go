package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breaker/internal/platform/tui"
)

// runMenu loops between the game picker, the scoreboard and games until the
// player quits.
func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			err := configureGame(result.GameID, store, cfg.ScreenW)
			if errors.Is(err, errBackedOut) {
				continue
			}
			if err != nil {
				return err
			}
			if err := playGame(result.GameID, store, cfg); err != nil {
				return err
			}
		}
	}
}
