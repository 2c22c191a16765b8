package shape

import (
	"encoding/json"
	"errors"
	"math"
)

// ErrEmptyKind is returned by New when no shape kind is given.
var ErrEmptyKind = errors.New("shape type cannot be null or empty")

// Point is a 2D coordinate. Points compare with ==.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Shape is an immutable description of one shape. The interpreter fills in
// kind and measurements; the synthesizer derives points or a centre through
// WithPoints / WithCentre, each of which returns a new value.
type Shape struct {
	kind         Kind
	measurements map[string]float64
	points       []Point
	centre       *Point
}

// New builds a shape with no geometry. Only KindUnknown is rejected here;
// whether a kind can be synthesized is decided by the geometry package.
func New(kind Kind, measurements map[string]float64) (Shape, error) {
	if kind == KindUnknown {
		return Shape{}, ErrEmptyKind
	}
	m := make(map[string]float64, len(measurements))
	for name, v := range measurements {
		m[name] = v
	}
	return Shape{kind: kind, measurements: m}, nil
}

// MustNew is New for statically known inputs. It panics on error.
func MustNew(kind Kind, measurements map[string]float64) Shape {
	s, err := New(kind, measurements)
	if err != nil {
		panic(err)
	}
	return s
}

// Kind returns the shape's archetype.
func (s Shape) Kind() Kind { return s.kind }

// Type returns the display name of the shape's kind.
func (s Shape) Type() string { return s.kind.String() }

// IsZero reports whether s is the zero Shape, i.e. was never constructed.
func (s Shape) IsZero() bool { return s.kind == KindUnknown }

// Measurements returns a copy of the named measurements.
func (s Shape) Measurements() map[string]float64 {
	out := make(map[string]float64, len(s.measurements))
	for name, v := range s.measurements {
		out[name] = v
	}
	return out
}

// Measurement looks up a single measurement by name.
func (s Shape) Measurement(name string) (float64, bool) {
	v, ok := s.measurements[name]
	return v, ok
}

// Points returns a copy of the vertex list; nil when the shape has none.
func (s Shape) Points() []Point {
	if len(s.points) == 0 {
		return nil
	}
	return append([]Point(nil), s.points...)
}

// Centre returns the centre point, if set.
func (s Shape) Centre() (Point, bool) {
	if s.centre == nil {
		return Point{}, false
	}
	return *s.centre, true
}

// Synthesized reports whether exactly one of points or centre is populated.
func (s Shape) Synthesized() bool {
	return (len(s.points) > 0) != (s.centre != nil)
}

// WithPoints returns a copy of s holding pts and no centre.
func (s Shape) WithPoints(pts []Point) Shape {
	out := s.clone()
	out.points = append([]Point(nil), pts...)
	out.centre = nil
	return out
}

// WithCentre returns a copy of s holding c and no points.
func (s Shape) WithCentre(c Point) Shape {
	out := s.clone()
	out.points = nil
	out.centre = &c
	return out
}

func (s Shape) clone() Shape {
	return Shape{kind: s.kind, measurements: s.Measurements()}
}

type shapeJSON struct {
	Type         string             `json:"type"`
	Measurements map[string]float64 `json:"measurements"`
	Points       []Point            `json:"points"`
	Centre       *Point             `json:"centre"`
}

// MarshalJSON encodes the shape with an empty points array and a null centre
// when those are absent.
func (s Shape) MarshalJSON() ([]byte, error) {
	pts := s.Points()
	if pts == nil {
		pts = []Point{}
	}
	var centre *Point
	if c, ok := s.Centre(); ok {
		centre = &c
	}
	return json.Marshal(shapeJSON{
		Type:         s.Type(),
		Measurements: s.Measurements(),
		Points:       pts,
		Centre:       centre,
	})
}
