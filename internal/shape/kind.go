// Package shape holds the value types shared by the interpreter and the
// geometry synthesizer: the closed set of shape kinds, points and shapes.
package shape

import (
	"fmt"
	"strings"
)

// Kind identifies one of the supported 2D archetypes.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindCircle
	KindSquare
	KindRectangle
	KindEquilateralTriangle
	KindIsoscelesTriangle
	KindScaleneTriangle
	KindPentagon
	KindHexagon
	KindHeptagon
	KindOctagon
	KindOval
	KindParallelogram

	kindCount // sentinel, keep last
)

// Measurement names understood by the synthesizer.
const (
	MeasureRadius     = "radius"
	MeasureSideLength = "side length"
	MeasureWidth      = "width"
	MeasureHeight     = "height"
	MeasureSide1      = "side1"
	MeasureSide2      = "side2"
)

var kindNames = [kindCount]string{
	KindUnknown:             "Unknown",
	KindCircle:              "Circle",
	KindSquare:              "Square",
	KindRectangle:           "Rectangle",
	KindEquilateralTriangle: "Equilateral Triangle",
	KindIsoscelesTriangle:   "Isosceles Triangle",
	KindScaleneTriangle:     "Scalene Triangle",
	KindPentagon:            "Pentagon",
	KindHexagon:             "Hexagon",
	KindHeptagon:            "Heptagon",
	KindOctagon:             "Octagon",
	KindOval:                "Oval",
	KindParallelogram:       "Parallelogram",
}

// requirements lists, per kind, the measurements its formula reads, in the
// order the synthesizer looks them up.
var requirements = [kindCount][]string{
	KindCircle:              {MeasureRadius},
	KindSquare:              {MeasureSideLength},
	KindRectangle:           {MeasureWidth, MeasureHeight},
	KindEquilateralTriangle: {MeasureSideLength},
	KindIsoscelesTriangle:   {MeasureHeight, MeasureWidth},
	KindScaleneTriangle:     {MeasureSide1, MeasureSide2},
	KindPentagon:            {MeasureSideLength},
	KindHexagon:             {MeasureSideLength},
	KindHeptagon:            {MeasureSideLength},
	KindOctagon:             {MeasureSideLength},
	KindOval:                {MeasureWidth, MeasureHeight},
	KindParallelogram:       {MeasureSideLength, MeasureHeight},
}

// String returns the display name, e.g. "Isosceles Triangle".
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k is one of the twelve archetypes.
func (k Kind) Valid() bool {
	return k > KindUnknown && k < kindCount
}

// Sides returns the number of vertices the synthesizer emits for k.
// Centre-based kinds and invalid kinds return 0.
func (k Kind) Sides() int {
	switch k {
	case KindEquilateralTriangle, KindIsoscelesTriangle, KindScaleneTriangle:
		return 3
	case KindSquare, KindRectangle, KindParallelogram:
		return 4
	case KindPentagon:
		return 5
	case KindHexagon:
		return 6
	case KindHeptagon:
		return 7
	case KindOctagon:
		return 8
	default:
		return 0
	}
}

// CentreBased reports whether k is described by a centre rather than vertices.
func (k Kind) CentreBased() bool {
	return k == KindCircle || k == KindOval
}

// RequiredMeasurements returns the measurement names k needs, or nil for an
// invalid kind. The returned slice is a copy.
func (k Kind) RequiredMeasurements() []string {
	if !k.Valid() {
		return nil
	}
	return append([]string(nil), requirements[k]...)
}

// MarshalText encodes the display name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Kinds returns the twelve archetypes in canonical order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindCircle; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// ParseKind maps a display name ("oval", "Scalene Triangle") to its Kind.
func ParseKind(name string) (Kind, bool) {
	name = strings.TrimSpace(name)
	for k := KindCircle; k < kindCount; k++ {
		if strings.EqualFold(kindNames[k], name) {
			return k, true
		}
	}
	return KindUnknown, false
}
