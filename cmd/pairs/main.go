// pairs is a terminal tile-matching game: connect equal tiles with a path of
// at most two bends and clear every stage before the clock runs out.
//
// Usage:
//
//	pairs list              - List game modes and stages
//	pairs play [mode]       - Play catalog (pairs) or loader (pairs_dynamic) mode
//	pairs menu              - Pick a stage interactively
//	pairs serve             - Start SSH server for remote play
//	pairs theme [name]      - Show or set the color theme
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set preferences database path (default: ~/.pairs/pairs.db)
//	--config <path>       - Use a specific config file
//	--difficulty <preset> - easy, normal or hard
//	--stages <dir>        - Load stages from a directory
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pairs/internal/config"
	"github.com/vovakirdan/tui-pairs/internal/games/pairs"
	"github.com/vovakirdan/tui-pairs/internal/storage"
	"github.com/vovakirdan/tui-pairs/internal/theme"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagStagesDir  string
	flagLogLevel   string
	flagLogFile    string
)

var (
	appConfig config.PairsConfig
	logger    = log.New(io.Discard)
	logFile   *os.File
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
	Use:   "pairs",
	Short: "Pairs - connect matching tiles in your terminal",
	Long: `Pairs is a terminal tile-matching game. Select two equal tiles that
can be joined by a path with at most two bends to clear them. The path may
run around the outside of the board. Clear the board before time runs out.

Available commands:
  list     - Show game modes and stages
  play     - Start a game directly
  menu     - Interactive stage picker
  serve    - Start SSH server for remote play
  theme    - Show or set the color theme

Examples:
  pairs list
  pairs play
  pairs play pairs_dynamic --stages ./my-stages
  pairs menu --difficulty easy
  pairs serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pairs/pairs.db", "Path to preferences database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagStagesDir, "stages", "", "Directory with stage files (default: built-in stages)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(themeCmd)
}

// setup loads the config, applies flag overrides, builds the logger and
// configures the game settings before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadPairs(flagConfig)
	if err != nil {
		return err
	}

	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			return err
		}
		config.ApplyPairsPreset(&cfg, preset)
	}
	if flagStagesDir != "" {
		cfg.Stages.Dir = flagStagesDir
	}
	if flagFPS > 0 {
		cfg.Timing.TickRate = flagFPS
	}

	if err := setupLogger(cmd); err != nil {
		return err
	}

	settings := pairs.DefaultSettings()
	settings.Rules = cfg.SessionRules()
	settings.TimeScale = cfg.TimeScale()
	settings.Logger = logger.WithPrefix("session")
	if cfg.Stages.Dir != "" {
		info, err := os.Stat(cfg.Stages.Dir)
		if err != nil {
			return fmt.Errorf("stages directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("stages directory: %s is not a directory", cfg.Stages.Dir)
		}
		settings.Stages = os.DirFS(cfg.Stages.Dir)
	}
	pairs.Configure(settings)

	logger.Debug("configured",
		"difficulty", cfg.Difficulty,
		"time_scale", settings.TimeScale,
		"tick_rate", cfg.Timing.TickRate,
		"stages", cfg.Stages.Dir,
	)

	appConfig = cfg
	return nil
}

// setupLogger routes logs to --log-file, or to stderr for the server.
// Interactive commands stay silent otherwise so the alt screen is not
// overwritten.
func setupLogger(cmd *cobra.Command) error {
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		w = f
	case cmd.Name() == serveCmd.Name():
		w = os.Stderr
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "pairs",
	})
	return nil
}

// openPreferences opens the preferences store. A failure is reported and
// play continues without persistence.
func openPreferences() (theme.Preferences, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open preferences database: %v\n", err)
		logger.Warn("preferences unavailable", "error", err)
		return nil, func() {}
	}
	return store, func() { store.Close() }
}

// initialTheme returns the saved theme or the one matching the terminal.
func initialTheme(prefs theme.Preferences) theme.Theme {
	t, err := theme.Load(prefs, theme.Detect())
	if err != nil {
		logger.Warn("cannot load theme", "error", err)
	}
	return t
}
