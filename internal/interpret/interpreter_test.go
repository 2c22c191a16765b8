package interpret

import (
	"errors"
	"strings"
	"testing"

	"shapegen/internal/shape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// SINGLE MEASUREMENT COMMANDS
// =============================================================================

func TestInterpret_SingleMeasurement(t *testing.T) {
	tests := []struct {
		command     string
		wantKind    shape.Kind
		measurement string
		value       float64
	}{
		{"Draw a circle with a radius of 100", shape.KindCircle, "radius", 100},
		{"Draw a square with a side length of 250", shape.KindSquare, "side length", 250},
		{"Draw a octagon with a side length of 200", shape.KindOctagon, "side length", 200},
		{"Draw an octagon with a side length of 50", shape.KindOctagon, "side length", 50},
		{"Draw a hexagon with a side length of 120", shape.KindHexagon, "side length", 120},
		{"Draw a heptagon with a side length of 90", shape.KindHeptagon, "side length", 90},
		{"Draw a pentagon with a side length of 100", shape.KindPentagon, "side length", 100},
		{"Draw an equilateral triangle with a side length of 100", shape.KindEquilateralTriangle, "side length", 100},
		{"Draw an oval with a width of 200", shape.KindOval, "width", 200},
		{"Draw a parallelogram with a side length of 100", shape.KindParallelogram, "side length", 100},
		{"Draw a circle with a radius of 100.5", shape.KindCircle, "radius", 100.5},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			out := Interpret(tt.command)
			require.True(t, out.OK(), "unexpected failure: %s", out.Reason())
			assert.Empty(t, out.Reason())
			assert.NoError(t, out.Err())

			s := out.Shape()
			assert.Equal(t, tt.wantKind, s.Kind())
			assert.Equal(t, map[string]float64{tt.measurement: tt.value}, s.Measurements())
			assert.Nil(t, s.Points(), "interpreter must not synthesize points")
			_, hasCentre := s.Centre()
			assert.False(t, hasCentre, "interpreter must not synthesize a centre")
		})
	}
}

// =============================================================================
// DUAL MEASUREMENT COMMANDS
// =============================================================================

func TestInterpret_TwoMeasurements(t *testing.T) {
	tests := []struct {
		command  string
		wantKind shape.Kind
		want     map[string]float64
	}{
		{
			"Draw a rectangle with a width of 250 and a height of 400",
			shape.KindRectangle,
			map[string]float64{"width": 250, "height": 400},
		},
		{
			"Draw an oval with a width of 300 and a height of 200",
			shape.KindOval,
			map[string]float64{"width": 300, "height": 200},
		},
		{
			"Draw an isosceles triangle with a height of 200 and a width of 100",
			shape.KindIsoscelesTriangle,
			map[string]float64{"height": 200, "width": 100},
		},
		{
			"Draw a scalene triangle with a side1 of 100 and a side2 of 150",
			shape.KindScaleneTriangle,
			map[string]float64{"side1": 100, "side2": 150},
		},
		{
			"Draw a parallelogram with a side length of 100 and a height of 50",
			shape.KindParallelogram,
			map[string]float64{"side length": 100, "height": 50},
		},
		{
			"Draw a rectangle with a width of 150.25 and a height of 200.75",
			shape.KindRectangle,
			map[string]float64{"width": 150.25, "height": 200.75},
		},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			out := Interpret(tt.command)
			require.True(t, out.OK(), "unexpected failure: %s", out.Reason())
			assert.Equal(t, tt.wantKind, out.Shape().Kind())
			assert.Equal(t, tt.want, out.Shape().Measurements())
		})
	}
}

func TestInterpret_DuplicateNameKeepsFirstValue(t *testing.T) {
	out := Interpret("Draw an isosceles triangle with a height of 200 and a height of 100")
	require.True(t, out.OK(), out.Reason())
	assert.Equal(t, map[string]float64{"height": 200}, out.Shape().Measurements())
}

func TestInterpret_DualTriedBeforeSingle(t *testing.T) {
	// The single pattern alone would capture "250 and a height of 400" as the
	// width value and fail numeric parsing.
	out := Interpret("Draw a rectangle with a width of 250 and a height of 400")
	require.True(t, out.OK(), out.Reason())
	assert.Len(t, out.Shape().Measurements(), 2)
}

// =============================================================================
// INVALID INPUT HANDLING
// =============================================================================

func TestInterpret_EmptyCommand(t *testing.T) {
	for _, cmd := range []string{"", "   ", "\t\n"} {
		out := Interpret(cmd)
		assert.False(t, out.OK())
		assert.Equal(t, ReasonEmptyCommand, out.Reason())
		assert.True(t, out.Shape().IsZero())
	}
}

func TestInterpret_InvalidFormat(t *testing.T) {
	commands := []string{
		"hello world",
		"Draw something",
		"Draw a shape",
		"Make a circle",
		"Draw a circle with",
		"Draw a circle with a radius",
		"Draw a circle with radius 100",
	}
	for _, cmd := range commands {
		t.Run(cmd, func(t *testing.T) {
			out := Interpret(cmd)
			assert.False(t, out.OK())
			assert.NotEmpty(t, out.Reason())
			assert.True(t, out.Shape().IsZero())
		})
	}

	out := Interpret("Draw something")
	assert.Equal(t, ReasonBadFormat, out.Reason())

	out = Interpret("Draw a circle with radius 100")
	assert.Equal(t, ReasonBadFormat, out.Reason(), "known shape without a measurement clause")
}

func TestInterpret_NonPositive(t *testing.T) {
	tests := []struct {
		command string
		name    string
	}{
		{"Draw a circle with a radius of -50", "radius"},
		{"Draw a circle with a radius of -100", "radius"},
		{"Draw a square with a side length of -100", "side length"},
		{"Draw a rectangle with a width of 100 and a height of -50", "height"},
		{"Draw a rectangle with a width of -1 and a height of -50", "width"},
		{"Draw a circle with a radius of 0", "radius"},
		{"Draw a square with a side length of 0", "side length"},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			out := Interpret(tt.command)
			require.False(t, out.OK())
			assert.Equal(t, "Value for "+tt.name+" must be positive.", out.Reason())
			assert.Contains(t, out.Reason(), "must be positive")
			assert.True(t, out.Shape().IsZero())
		})
	}
}

func TestInterpret_NonNumeric(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"Draw a circle with a radius of abc", "Invalid measurement value for radius."},
		{"Draw a square with a side length of xyz", "Invalid measurement value for side length."},
		{"Draw a rectangle with a width of ten and a height of -5", "Invalid measurement value for width."},
		{"Draw a rectangle with a width of 10 and a height of tall", "Invalid measurement value for height."},
		{"Draw a circle with a radius of NaN", "Invalid measurement value for radius."},
		{"Draw a circle with a radius of inf", "Invalid measurement value for radius."},
		{"Draw a circle with a radius of 1e999", "Invalid measurement value for radius."},
		{"Draw a circle with a radius of 0x1p4", "Invalid measurement value for radius."},
		{"Draw a square with a side length of 0X10", "Invalid measurement value for side length."},
		{"Draw a rectangle with a width of 10 and a height of -0x1p4", "Invalid measurement value for height."},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			out := Interpret(tt.command)
			require.False(t, out.OK())
			assert.Equal(t, tt.want, out.Reason())
		})
	}
}

func TestInterpret_UnsupportedShape(t *testing.T) {
	tests := []struct {
		command string
		phrase  string
	}{
		{"Draw a dodecagon with a side length of 100", "dodecagon"},
		{"Draw a star with a radius of 50", "star"},
		{"Draw a HEART with a size of 100", "heart"},
		{"Draw a right triangle with a side1 of 3 and a side2 of 4", "right triangle"},
	}
	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			out := Interpret(tt.command)
			require.False(t, out.OK())
			assert.Equal(t, "'"+tt.phrase+"' is not supported shape.", out.Reason())
			assert.Contains(t, out.Reason(), "not supported")
		})
	}
}

func TestInterpret_UnsupportedShapeReportedBeforeMeasurements(t *testing.T) {
	out := Interpret("Draw a star with a radius of abc")
	assert.Contains(t, out.Reason(), "not supported")
}

// =============================================================================
// EDGE CASES
// =============================================================================

func TestInterpret_CaseAndWhitespaceInsensitive(t *testing.T) {
	canonical := Interpret("Draw a circle with a radius of 100")
	require.True(t, canonical.OK())

	variants := []string{
		"Draw a Circle with a Radius of 100",
		"draw a circle with a radius of 100",
		"DRAW A CIRCLE WITH A RADIUS OF 100",
		"  Draw   a  circle with a radius of 100 ",
		"Draw  a  circle  with  a  radius  of  100",
		"Draw\ta\ncircle with a radius of 100",
	}
	for _, cmd := range variants {
		out := Interpret(cmd)
		require.True(t, out.OK(), "%q: %s", cmd, out.Reason())
		assert.Equal(t, canonical.Shape().Kind(), out.Shape().Kind(), cmd)
		assert.Equal(t, canonical.Shape().Measurements(), out.Shape().Measurements(), cmd)
	}
}

func TestInterpret_MeasurementNamesAreLowerCased(t *testing.T) {
	out := Interpret("Draw a rectangle with a WIDTH of 2 and a Height of 3")
	require.True(t, out.OK(), out.Reason())
	assert.Equal(t, map[string]float64{"width": 2, "height": 3}, out.Shape().Measurements())
}

func TestInterpret_EveryPhraseParses(t *testing.T) {
	for _, phrase := range Phrases() {
		kind, ok := LookupPhrase(phrase)
		require.True(t, ok)
		cmd := "Draw a " + phrase + " with a side length of 10"
		out := Interpret(cmd)
		require.True(t, out.OK(), "%s: %s", cmd, out.Reason())
		assert.Equal(t, kind, out.Shape().Kind())
	}
}

func TestInterpret_NeverPanics(t *testing.T) {
	inputs := []string{
		"draw", "draw a", "draw a with", "with a of", "draw an an with an of and an of",
		"draw a circle with a radius of 1 and", "draw a circle with a  of ",
		strings.Repeat("draw a circle with a radius of 1 and ", 50),
		"\x00\xff draw a circle with a radius of 5",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { Interpret(in) }, "%q", in)
	}
}

func TestOutcomeErr(t *testing.T) {
	out := Interpret("Draw a star with a radius of 50")
	err := out.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidCommand))

	var inputErr *InputError
	require.True(t, errors.As(err, &inputErr))
	assert.Equal(t, out.Reason(), inputErr.Reason)
}
