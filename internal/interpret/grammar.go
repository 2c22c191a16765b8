package interpret

import (
	"regexp"
	"sort"
	"strings"

	"shapegen/internal/shape"
)

// =============================================================================
// MEASUREMENT GRAMMAR
// =============================================================================
// Commands look like "Draw a <shape> with a <measurement> of <value>", with an
// optional "and a <measurement> of <value>" tail. Matching happens on the
// normalized (lower-cased, whitespace-collapsed) command.

var (
	// shapePattern captures the shape phrase between the article and "with".
	shapePattern = regexp.MustCompile(`(?i)draw\s+an?\s+(.+?)\s+with`)

	// dualMeasurementPattern captures name1, value1, name2, value2.
	// Always tried before singleMeasurementPattern.
	dualMeasurementPattern = regexp.MustCompile(`with\s+an?\s+(.+?)\s+of\s+(.+?)\s+and\s+an?\s+(.+?) of (.+?)$`)

	// singleMeasurementPattern captures name, value.
	singleMeasurementPattern = regexp.MustCompile(`with\s+an?\s+(.+?)\s+of\s+(.+?)$`)
)

// supportedShapes maps a lower-case shape phrase to its archetype.
var supportedShapes = map[string]shape.Kind{
	"circle":        shape.KindCircle,
	"square":        shape.KindSquare,
	"rectangle":     shape.KindRectangle,
	"parallelogram": shape.KindParallelogram,
	"oval":          shape.KindOval,

	"isosceles triangle":   shape.KindIsoscelesTriangle,
	"scalene triangle":     shape.KindScaleneTriangle,
	"equilateral triangle": shape.KindEquilateralTriangle,

	"pentagon": shape.KindPentagon,
	"hexagon":  shape.KindHexagon,
	"heptagon": shape.KindHeptagon,
	"octagon":  shape.KindOctagon,
}

// Normalize trims the command, collapses every run of whitespace to a single
// space and lower-cases the result.
func Normalize(command string) string {
	return strings.ToLower(strings.Join(strings.Fields(command), " "))
}

// LookupPhrase resolves a shape phrase, ignoring case and surrounding space.
func LookupPhrase(phrase string) (shape.Kind, bool) {
	k, ok := supportedShapes[strings.ToLower(strings.TrimSpace(phrase))]
	return k, ok
}

// Phrases returns every supported shape phrase, sorted.
func Phrases() []string {
	out := make([]string, 0, len(supportedShapes))
	for p := range supportedShapes {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// PhraseFor returns the phrase that selects kind k.
func PhraseFor(k shape.Kind) (string, bool) {
	for p, kind := range supportedShapes {
		if kind == k {
			return p, true
		}
	}
	return "", false
}

// measurementClause is one "<name> of <value>" capture, value still raw.
type measurementClause struct {
	name  string
	value string
}

// matchShapePhrase extracts the shape phrase from a normalized command.
func matchShapePhrase(normalized string) (string, bool) {
	m := shapePattern.FindStringSubmatch(normalized)
	if len(m) < 2 {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(m[1])), true
}

// matchMeasurements returns the measurement clauses of a normalized command,
// trying the dual form first.
func matchMeasurements(normalized string) ([]measurementClause, bool) {
	if m := dualMeasurementPattern.FindStringSubmatch(normalized); len(m) == 5 {
		return []measurementClause{
			{name: strings.TrimSpace(m[1]), value: m[2]},
			{name: strings.TrimSpace(m[3]), value: m[4]},
		}, true
	}
	if m := singleMeasurementPattern.FindStringSubmatch(normalized); len(m) == 3 {
		return []measurementClause{
			{name: strings.TrimSpace(m[1]), value: m[2]},
		}, true
	}
	return nil, false
}

// exampleValues are the sample measurement values used by Example.
var exampleValues = [...]string{"100", "50"}

// Example returns a command that parses to k, or "" for an invalid kind.
func Example(k shape.Kind) string {
	phrase, ok := PhraseFor(k)
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString("Draw " + article(phrase) + " " + phrase)
	for i, name := range k.RequiredMeasurements() {
		if i == 0 {
			b.WriteString(" with ")
		} else {
			b.WriteString(" and ")
		}
		b.WriteString(article(name) + " " + name + " of " + exampleValues[i%len(exampleValues)])
	}
	return b.String()
}

func article(word string) string {
	if word != "" && strings.ContainsRune("aeiou", rune(word[0])) {
		return "an"
	}
	return "a"
}
