package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pairs/internal/games/pairs"
	"github.com/vovakirdan/tui-pairs/internal/pairs/stages"
	"github.com/vovakirdan/tui-pairs/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and stages",
	Long:  `Shows the registered game modes and the stages catalog mode plays.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println(gamesTable(games))
	fmt.Println()

	cat, err := pairs.StageCatalog(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading stages: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Stages:")
	fmt.Println(stagesTable(cat.All()))
	fmt.Println()
	fmt.Println("Run 'pairs play --stage <n>' to start on a stage.")
}

// newListTable returns a borderless table with padded cells and bold headers.
func newListTable(headers ...string) *table.Table {
	cell := lipgloss.NewStyle().PaddingLeft(2)
	header := cell.Bold(true)
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}

func gamesTable(games []registry.GameInfo) string {
	t := newListTable("ID", "Title")
	for _, g := range games {
		t.Row(g.ID, g.Title)
	}
	return t.Render()
}

func stagesTable(defs []stages.Definition) string {
	t := newListTable("#", "Name", "Size", "Tiles", "Time", "File")
	for i, def := range defs {
		t.Row(
			strconv.Itoa(i+1),
			def.Title(),
			fmt.Sprintf("%dx%d", def.Rows, def.Cols),
			strconv.Itoa(def.ActiveCount()),
			def.TimeLimit.String(),
			def.Source,
		)
	}
	return t.Render()
}
