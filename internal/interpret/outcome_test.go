package interpret

import (
	"testing"

	"shapegen/internal/shape"

	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	s := shape.MustNew(shape.KindCircle, map[string]float64{"radius": 100})
	out := Success(s)

	assert.True(t, out.OK())
	assert.Equal(t, shape.KindCircle, out.Shape().Kind())
	assert.Empty(t, out.Reason())
	assert.NoError(t, out.Err())
}

func TestSuccess_ZeroShapePanics(t *testing.T) {
	assert.Panics(t, func() { Success(shape.Shape{}) })
}

func TestFailure(t *testing.T) {
	out := Failure("Invalid command format")

	assert.False(t, out.OK())
	assert.Equal(t, "Invalid command format", out.Reason())
	assert.True(t, out.Shape().IsZero())
	assert.EqualError(t, out.Err(), "Invalid command format")
}

func TestFailure_BlankReasonPanics(t *testing.T) {
	for _, reason := range []string{"", "   ", "\n\t"} {
		assert.PanicsWithValue(t, "interpret: error message cannot be null or empty", func() {
			Failure(reason)
		})
	}
}
