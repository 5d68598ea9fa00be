package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pairs/internal/platform/tui"
	"github.com/vovakirdan/tui-pairs/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a stage from a menu",
	Long: `Start Pairs with an interactive stage picker.

Every built-in (or --stages) stage is listed with its size and time limit.
The last entry plays all stage files in order with the stage loader.
Press Esc or B in a game to return to the picker.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Play
  T            - Toggle theme
  Q/Esc        - Quit

Examples:
  pairs menu
  pairs menu --difficulty hard
  pairs menu --stages ./my-stages`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	items, err := tui.MenuItems(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stages: %v\n", err)
		os.Exit(1)
	}

	prefs, closePrefs := openPreferences()
	defer closePrefs()

	cfg := terminalConfig()
	t := initialTheme(prefs)

	// Menu loop
	for {
		result, err := tui.RunMenu(items, prefs, t, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config
		t = result.Theme

		if result.Quit {
			return
		}

		game, err := registry.Create(result.Item.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		runCfg := cfg
		runCfg.StartAt = result.Item.StartAt
		if runCfg.Seed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}
		logger.Info("game started", "game", result.Item.GameID, "stage", runCfg.StartAt)

		back, newTheme, err := tui.Run(game, prefs, t, runCfg, true)
		t = newTheme
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !back {
			return
		}
	}
}
