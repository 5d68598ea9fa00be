package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pairs/internal/core"
	"github.com/vovakirdan/tui-pairs/internal/games/pairs"
	"github.com/vovakirdan/tui-pairs/internal/pairs/session"
	"github.com/vovakirdan/tui-pairs/internal/platform/tui"
	"github.com/vovakirdan/tui-pairs/internal/registry"
)

var (
	flagStartStage int
	flagDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play Pairs",
	Long: `Start a game directly. Without an argument the mode from the config
file is used (catalog by default).

Games:
  pairs          - Fixed stage list, dead boards are reshuffled for free
  pairs_dynamic  - Stages are loaded one by one; a dead board costs a shuffle

Controls:
  Arrows/hjkl/wasd - Move cursor
  Enter/Space      - Select tile, continue after a stage
  Mouse click      - Select tile
  ?                - Hint (shows a connectable pair)
  X                - Shuffle remaining tiles
  N                - Next stage
  R                - Restart from stage 1
  T                - Toggle light/dark theme
  F1               - Show all keys
  Q/Ctrl+C         - Quit

Examples:
  pairs play
  pairs play --stage 3
  pairs play pairs_dynamic --stages ./my-stages
  pairs play --difficulty easy --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagStartStage, "stage", 1, "Stage to start on")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Enable the F9 stage skip")
}

// defaultGameID maps the configured mode to a registered game.
func defaultGameID() (string, error) {
	mode, err := appConfig.SessionMode()
	if err != nil {
		return "", err
	}
	if mode == session.ModeDynamic {
		return pairs.IDDynamic, nil
	}
	return pairs.IDCatalog, nil
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: appConfig.Timing.TickRate,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) {
	gameID, err := defaultGameID()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pairs list' to see available games.")
		os.Exit(1)
	}
	if flagStartStage < 1 {
		fmt.Fprintf(os.Stderr, "Error: --stage must be at least 1, got %d\n", flagStartStage)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := terminalConfig()
	cfg.StartAt = flagStartStage
	cfg.Debug = flagDebug

	prefs, closePrefs := openPreferences()
	logger.Info("game started", "game", gameID, "stage", cfg.StartAt, "seed", cfg.Seed)

	_, _, runErr := tui.Run(game, prefs, initialTheme(prefs), cfg, false)

	// Close store before potential exit
	closePrefs()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
