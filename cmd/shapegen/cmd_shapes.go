package main

import (
	"fmt"

	"shapegen/cmd/shapegen/ui"
	"shapegen/internal/logging"

	"github.com/spf13/cobra"
)

var shapesPlain bool

// shapesCmd lists the supported archetypes
var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List supported shapes, their phrases and required measurements",
	RunE:  runShapes,
}

func init() {
	shapesCmd.Flags().BoolVar(&shapesPlain, "plain", false, "Print raw markdown")
}

func runShapes(cmd *cobra.Command, args []string) error {
	md := ui.ShapesMarkdown()
	if shapesPlain {
		fmt.Print(md)
		return nil
	}

	out, err := ui.RenderMarkdown(md, ui.ThemeByName(currentConfig().UI.Theme), 100)
	if err != nil {
		logging.UIDebug("markdown render failed, printing raw: %v", err)
		out = md
	}
	fmt.Print(out)
	return nil
}
