package ui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"shapegen/internal/geometry"
	"shapegen/internal/interpret"
	"shapegen/internal/shape"

	"github.com/charmbracelet/glamour"
)

// RenderOptions controls how a shape summary is printed.
type RenderOptions struct {
	Precision  int
	ShowPoints bool
}

// DefaultRenderOptions matches the config defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Precision: 2, ShowPoints: true}
}

// FormatFloat prints v with a fixed number of decimals.
func FormatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func formatPoint(p shape.Point, precision int) string {
	return "(" + FormatFloat(p.X, precision) + ", " + FormatFloat(p.Y, precision) + ")"
}

// orderedMeasurements lists the kind's required names first, then any
// extras alphabetically.
func orderedMeasurements(s shape.Shape) []string {
	m := s.Measurements()
	var names []string
	for _, name := range s.Kind().RequiredMeasurements() {
		if _, ok := m[name]; ok {
			names = append(names, name)
			delete(m, name)
		}
	}
	extra := make([]string, 0, len(m))
	for name := range m {
		extra = append(extra, name)
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// FormatMeasurements renders "name=value" pairs in display order.
func FormatMeasurements(s shape.Shape, precision int) string {
	names := orderedMeasurements(s)
	parts := make([]string, len(names))
	for i, name := range names {
		v, _ := s.Measurement(name)
		parts[i] = name + "=" + FormatFloat(v, precision)
	}
	return strings.Join(parts, ", ")
}

// RenderShape renders a synthesized shape: a type badge with its
// measurements, then either the centre or the vertex list.
func RenderShape(s shape.Shape, styles Styles, opts RenderOptions) string {
	var sb strings.Builder
	sb.WriteString(styles.Badge.Render(s.Type()))
	sb.WriteString(" ")
	sb.WriteString(styles.Muted.Render(FormatMeasurements(s, opts.Precision)))
	sb.WriteString("\n")

	if c, ok := s.Centre(); ok {
		sb.WriteString(styles.Body.Render("centre " + formatPoint(c, opts.Precision)))
		sb.WriteString("\n")
		return sb.String()
	}

	pts := s.Points()
	lo, hi := geometry.Bounds(pts)
	sb.WriteString(styles.Body.Render(fmt.Sprintf("%d vertices, bounds %s to %s",
		len(pts), formatPoint(lo, opts.Precision), formatPoint(hi, opts.Precision))))
	sb.WriteString("\n")

	if opts.ShowPoints && len(pts) > 0 {
		table := NewTable("", "#", "x", "y")
		table.RightAlign[1] = true
		table.RightAlign[2] = true
		for i, p := range pts {
			table.AddRow(strconv.Itoa(i+1), FormatFloat(p.X, opts.Precision), FormatFloat(p.Y, opts.Precision))
		}
		sb.WriteString(table.View(styles))
	}
	return sb.String()
}

// RenderError renders a rejected command or failed generation.
func RenderError(msg string, styles Styles) string {
	return styles.Error.Render("✗ ") + styles.Body.Render(msg)
}

// ShapesMarkdown returns a markdown table of every supported archetype.
func ShapesMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# Supported shapes\n\n")
	sb.WriteString("| Shape | Phrase | Measurements | Example |\n")
	sb.WriteString("|---|---|---|---|\n")
	for _, k := range shape.Kinds() {
		phrase, _ := interpret.PhraseFor(k)
		fmt.Fprintf(&sb, "| %s | %s | %s | `%s` |\n",
			k, phrase, strings.Join(k.RequiredMeasurements(), ", "), interpret.Example(k))
	}
	sb.WriteString("\nValues must be positive decimals. Matching ignores case and extra whitespace.\n")
	return sb.String()
}

// RenderMarkdown renders md for the terminal with the theme's glamour style.
func RenderMarkdown(md string, theme Theme, width int) (string, error) {
	style := "light"
	if theme.IsDark {
		style = "dark"
	}
	if width <= 0 {
		width = 100
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r.Render(md)
}
