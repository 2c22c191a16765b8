// Package geometry derives vertex or centre coordinates for a parsed shape.
//
// Polygons are placed with their first vertex at the origin and extend into
// positive x/y, so every bounding box is non-negative. Regular polygons are
// the exception: they sit in the square [0, 2R] around centre (R, R).
// No rounding is applied to any output.
package geometry

import (
	"math"

	"shapegen/internal/shape"
)

// Synthesize returns a copy of s with points or a centre filled in.
// Passing the zero Shape is a programming error and panics.
func Synthesize(s shape.Shape) (shape.Shape, error) {
	if s.IsZero() {
		panic("geometry: Synthesize called with zero Shape")
	}

	d := dims{shape: s}
	switch k := s.Kind(); k {
	case shape.KindCircle:
		r := d.get(shape.MeasureRadius)
		if d.err != nil {
			return shape.Shape{}, d.err
		}
		return s.WithCentre(circleCentre(r)), nil

	case shape.KindOval:
		w, h := d.get(shape.MeasureWidth), d.get(shape.MeasureHeight)
		if d.err != nil {
			return shape.Shape{}, d.err
		}
		return s.WithCentre(ovalCentre(w, h)), nil

	case shape.KindSquare:
		side := d.get(shape.MeasureSideLength)
		if d.err != nil {
			return shape.Shape{}, d.err
		}
		return s.WithPoints(rectanglePoints(side, side)), nil

	case shape.KindRectangle:
		w, h := d.get(shape.MeasureWidth), d.get(shape.MeasureHeight)
		if d.err != nil {
			return shape.Shape{}, d.err
		}
		return s.WithPoints(rectanglePoints(w, h)), nil

	case shape.KindEquilateralTriangle:
		side := d.get(shape.MeasureSideLength)
		if d.err != nil {
			return shape.Shape{}, d.err
		}
		return s.WithPoints(equilateralPoints(side)), nil

	case shape.KindIsoscelesTriangle:
		h, w := d.get(shape.MeasureHeight), d.get(shape.MeasureWidth)
		if d.err != nil {
			return shape.Shape{}, d.err
		}
		return s.WithPoints(isoscelesPoints(w, h)), nil

	case shape.KindScaleneTriangle:
		a, b := d.get(shape.MeasureSide1), d.get(shape.MeasureSide2)
		if d.err != nil {
			return shape.Shape{}, d.err
		}
		return s.WithPoints(scalenePoints(a, b)), nil

	case shape.KindPentagon, shape.KindHexagon, shape.KindHeptagon, shape.KindOctagon:
		side := d.get(shape.MeasureSideLength)
		if d.err != nil {
			return shape.Shape{}, d.err
		}
		return s.WithPoints(RegularPolygon(side, k.Sides())), nil

	case shape.KindParallelogram:
		side, h := d.get(shape.MeasureSideLength), d.get(shape.MeasureHeight)
		if d.err != nil {
			return shape.Shape{}, d.err
		}
		return s.WithPoints(parallelogramPoints(side, h)), nil

	default:
		return shape.Shape{}, &UnsupportedKindError{Kind: k}
	}
}

// dims reads measurements and keeps the first missing one as an error.
type dims struct {
	shape shape.Shape
	err   error
}

func (d *dims) get(name string) float64 {
	if d.err != nil {
		return 0
	}
	v, ok := d.shape.Measurement(name)
	if !ok {
		d.err = &MissingDimensionError{Dimension: name, Kind: d.shape.Kind()}
	}
	return v
}

// Circumradius returns the distance from the centre of a regular n-gon with
// the given side length to any vertex.
func Circumradius(side float64, n int) float64 {
	return side / (2 * math.Sin(math.Pi/float64(n)))
}

// Bounds returns the axis-aligned bounding box of pts. It returns zero points
// for an empty slice.
func Bounds(pts []shape.Point) (lo, hi shape.Point) {
	if len(pts) == 0 {
		return shape.Point{}, shape.Point{}
	}
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}

// CheckFinite returns a *NonFiniteError if any point or the centre of s has
// an infinite or NaN coordinate.
func CheckFinite(s shape.Shape) error {
	finite := func(p shape.Point) bool {
		return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
	}
	if c, ok := s.Centre(); ok && !finite(c) {
		return &NonFiniteError{Kind: s.Kind()}
	}
	for _, p := range s.Points() {
		if !finite(p) {
			return &NonFiniteError{Kind: s.Kind()}
		}
	}
	return nil
}
