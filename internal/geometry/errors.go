package geometry

import (
	"errors"
	"fmt"

	"shapegen/internal/shape"
)

var (
	// ErrUnsupportedKind means the shape's kind has no formula.
	ErrUnsupportedKind = errors.New("shape type not supported for coordinate calculation")

	// ErrMissingDimension means a measurement the formula needs is absent.
	ErrMissingDimension = errors.New("required dimension not found")

	// ErrNonFinite means a formula overflowed to an infinite or NaN coordinate.
	ErrNonFinite = errors.New("coordinates are not finite")
)

// UnsupportedKindError reports a kind that reached the synthesizer without a
// formula. The interpreter only emits supported kinds, so this indicates a
// caller bug.
type UnsupportedKindError struct {
	Kind shape.Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("shape type '%s' is not supported for coordinate calculation", e.Kind)
}

func (e *UnsupportedKindError) Is(target error) bool { return target == ErrUnsupportedKind }

// MissingDimensionError reports a required measurement absent from a shape.
type MissingDimensionError struct {
	Dimension string
	Kind      shape.Kind
}

func (e *MissingDimensionError) Error() string {
	return fmt.Sprintf("required dimension '%s' not found for shape '%s'", e.Dimension, e.Kind)
}

func (e *MissingDimensionError) Is(target error) bool { return target == ErrMissingDimension }

// NonFiniteError reports a synthesized shape whose coordinates overflowed.
// Inputs are finite, but very large ones (a side length of 1e308) can still
// overflow inside a formula.
type NonFiniteError struct {
	Kind shape.Kind
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("coordinates for shape '%s' are not finite", e.Kind)
}

func (e *NonFiniteError) Is(target error) bool { return target == ErrNonFinite }
