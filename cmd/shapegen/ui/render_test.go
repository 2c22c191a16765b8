package ui

import (
	"strings"
	"testing"

	"shapegen/internal/geometry"
	"shapegen/internal/shape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func synthesized(t *testing.T, k shape.Kind, m map[string]float64) shape.Shape {
	t.Helper()
	s, err := geometry.Synthesize(shape.MustNew(k, m))
	require.NoError(t, err)
	return s
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "1.50", FormatFloat(1.5, 2))
	assert.Equal(t, "100", FormatFloat(100, 0))
}

func TestFormatMeasurements_RequiredOrder(t *testing.T) {
	s := shape.MustNew(shape.KindRectangle, map[string]float64{
		shape.MeasureHeight: 50,
		shape.MeasureWidth:  100,
	})
	assert.Equal(t, "width=100.0, height=50.0", FormatMeasurements(s, 1))
}

func TestRenderShape(t *testing.T) {
	styles := NewStyles(LightTheme())

	t.Run("centre based", func(t *testing.T) {
		s := synthesized(t, shape.KindCircle, map[string]float64{shape.MeasureRadius: 100})
		out := RenderShape(s, styles, DefaultRenderOptions())
		assert.Contains(t, out, "Circle")
		assert.Contains(t, out, "radius=100.00")
		assert.Contains(t, out, "centre (100.00, 100.00)")
		assert.NotContains(t, out, "vertices")
	})

	t.Run("polygon with points", func(t *testing.T) {
		s := synthesized(t, shape.KindRectangle, map[string]float64{shape.MeasureWidth: 100, shape.MeasureHeight: 50})
		out := RenderShape(s, styles, DefaultRenderOptions())
		assert.Contains(t, out, "4 vertices, bounds (0.00, 0.00) to (100.00, 50.00)")
		assert.Contains(t, out, "50.00")
		assert.Equal(t, 10, strings.Count(out, "|"), "header and four rows, two separators each")
	})

	t.Run("polygon without points", func(t *testing.T) {
		s := synthesized(t, shape.KindSquare, map[string]float64{shape.MeasureSideLength: 10})
		out := RenderShape(s, styles, RenderOptions{Precision: 0})
		assert.Contains(t, out, "4 vertices")
		assert.NotContains(t, out, "|")
	})
}

func TestRenderError(t *testing.T) {
	out := RenderError("Invalid command format", NewStyles(DarkTheme()))
	assert.Contains(t, out, "✗")
	assert.Contains(t, out, "Invalid command format")
}

func TestShapesMarkdown(t *testing.T) {
	md := ShapesMarkdown()
	assert.True(t, strings.HasPrefix(md, "# Supported shapes"))
	for _, k := range shape.Kinds() {
		assert.Contains(t, md, "| "+k.String()+" |")
	}
	assert.Contains(t, md, "Draw a circle with a radius of 100")
}

func TestRenderMarkdown(t *testing.T) {
	out, err := RenderMarkdown(ShapesMarkdown(), DarkTheme(), 0)
	require.NoError(t, err)
	assert.Contains(t, out, "Supported shapes")
	assert.Contains(t, out, "Octagon")
}
