package geometry

import (
	"math"

	"shapegen/internal/shape"
)

// circleCentre puts the circle's bounding box corner on the origin.
func circleCentre(r float64) shape.Point {
	return shape.Pt(r, r)
}

func ovalCentre(w, h float64) shape.Point {
	return shape.Pt(w/2, h/2)
}

// rectanglePoints also serves squares (w == h).
func rectanglePoints(w, h float64) []shape.Point {
	return []shape.Point{
		shape.Pt(0, 0),
		shape.Pt(w, 0),
		shape.Pt(w, h),
		shape.Pt(0, h),
	}
}

func equilateralPoints(side float64) []shape.Point {
	return []shape.Point{
		shape.Pt(0, 0),
		shape.Pt(side, 0),
		shape.Pt(side/2, math.Sqrt(3)/2*side),
	}
}

func isoscelesPoints(w, h float64) []shape.Point {
	return []shape.Point{
		shape.Pt(0, 0),
		shape.Pt(w, 0),
		shape.Pt(w/2, h),
	}
}

// scalenePoints lays side1 along the x axis and places the apex above the
// midpoint of side2. side1 only sets the base; no triangle-inequality check
// is made. This is an approximation, not a general side-side construction.
func scalenePoints(side1, side2 float64) []shape.Point {
	half := side2 / 2
	return []shape.Point{
		shape.Pt(0, 0),
		shape.Pt(side1, 0),
		shape.Pt(half, math.Sqrt(side2*side2-half*half)),
	}
}

// RegularPolygon returns the n vertices of a regular polygon with the given
// side length, centred on (R, R) where R is the circumradius. The first
// vertex is at the top and the rest follow clockwise in screen coordinates.
func RegularPolygon(side float64, n int) []shape.Point {
	r := Circumradius(side, n)
	step := 2 * math.Pi / float64(n)
	pts := make([]shape.Point, n)
	for i := range pts {
		angle := -math.Pi/2 + float64(i)*step
		pts[i] = shape.Pt(r+r*math.Cos(angle), r+r*math.Sin(angle))
	}
	return pts
}

// parallelogramPoints uses a fixed 45 degree shear.
func parallelogramPoints(side, h float64) []shape.Point {
	d := side * math.Sin(math.Pi/4)
	return []shape.Point{
		shape.Pt(0, 0),
		shape.Pt(side, 0),
		shape.Pt(side-d, h),
		shape.Pt(d, h),
	}
}
