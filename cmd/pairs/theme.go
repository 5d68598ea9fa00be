package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pairs/internal/storage"
	"github.com/vovakirdan/tui-pairs/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme [dark|light]",
	Short: "Show or set the color theme",
	Long: `Without an argument, prints the saved theme (or the one detected from
the terminal background when nothing is saved). With an argument, saves it.

Examples:
  pairs theme
  pairs theme light`,
	Args: cobra.MaximumNArgs(1),
	Run:  runTheme,
}

func runTheme(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening preferences database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		detected := theme.Detect()
		t, err := theme.Load(store, detected)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if _, saved, _ := store.Preference(theme.PreferenceKey); !saved {
			fmt.Printf("%s (detected, not saved)\n", t)
			return
		}
		fmt.Println(t)
		return
	}

	t, err := theme.Parse(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := theme.Save(store, t); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Theme set to %s\n", t)
}
