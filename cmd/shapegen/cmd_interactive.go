package main

import (
	"fmt"

	"shapegen/cmd/shapegen/ui"
	"shapegen/internal/generator"
	"shapegen/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// interactiveCmd starts the TUI
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Type drawing commands and see the shapes they produce",
	RunE:  runInteractive,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	c := currentConfig()
	model := ui.NewModel(
		generator.New(generator.WithSource("interactive")),
		ui.NewStyles(ui.ThemeByName(c.UI.Theme)),
		ui.RenderOptions{Precision: c.UI.Precision, ShowPoints: c.UI.ShowPoints},
		c.UI.GetHistorySize(),
	)

	logging.UI("interactive session started")
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	if m, ok := final.(ui.Model); ok {
		logging.UI("interactive session ended with %d results in history", len(m.History()))
	}
	return nil
}
