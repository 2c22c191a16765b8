package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"shapegen/cmd/shapegen/ui"
	"shapegen/internal/generator"
	"shapegen/internal/server"

	"github.com/spf13/cobra"
)

var (
	parseJSON      bool
	parsePrecision int
	parseNoPoints  bool
)

// parseCmd generates a single shape
var parseCmd = &cobra.Command{
	Use:   "parse [command...]",
	Short: "Generate a shape from a drawing command",
	Long: `Interprets a drawing command and prints the resulting shape.

Flags go before the command. Everything after the first word of the
command is taken literally, so negative values are not read as flags.

Examples:
  shapegen parse Draw a circle with a radius of 100
  shapegen parse --json "Draw an octagon with a side length of 200"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Print the API response JSON instead of a summary")
	parseCmd.Flags().IntVar(&parsePrecision, "precision", -1, "Decimal places for coordinates (default from config)")
	parseCmd.Flags().BoolVar(&parseNoPoints, "no-points", false, "Omit the vertex table")
	parseCmd.Flags().SetInterspersed(false)
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := currentConfig()
	gen := generator.New(generator.WithSource("cli"))
	s, err := gen.Generate(ctx, joinArgs(args))

	if parseJSON {
		resp := server.ParseResponse{Success: err == nil}
		if err == nil {
			resp.Shape = &s
		} else {
			msg := server.FailureMessage(err)
			resp.ErrorMessage = &msg
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(resp); encErr != nil {
			return fmt.Errorf("failed to encode response: %w", encErr)
		}
		if err != nil {
			return errReported
		}
		return nil
	}

	styles := ui.NewStyles(ui.ThemeByName(c.UI.Theme))
	if err != nil {
		fmt.Println(ui.RenderError(server.FailureMessage(err), styles))
		return errReported
	}

	opts := ui.RenderOptions{Precision: c.UI.Precision, ShowPoints: c.UI.ShowPoints && !parseNoPoints}
	if parsePrecision >= 0 {
		opts.Precision = parsePrecision
	}
	fmt.Print(ui.RenderShape(s, styles, opts))
	return nil
}
