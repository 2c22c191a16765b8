// Package interpret turns a constrained-grammar drawing command such as
// "Draw a rectangle with a width of 250 and a height of 400" into a shape
// kind plus named measurements.
//
// Every user input problem is returned as a failed Outcome; Interpret never
// panics and has no side effects.
package interpret

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"shapegen/internal/shape"
)

// Failure reasons shared with transports and tests.
const (
	ReasonEmptyCommand = "Command cannot be null or empty."
	ReasonBadFormat    = "Command must be in the format 'Draw a <shape> with a <measurement> of <value>'"
)

// Interpreter applies the measurement grammar. The zero value is ready to use.
type Interpreter struct{}

// New returns an Interpreter.
func New() *Interpreter {
	return &Interpreter{}
}

var defaultInterpreter = New()

// Interpret parses command with the default Interpreter.
func Interpret(command string) Outcome {
	return defaultInterpreter.Interpret(command)
}

// Interpret parses a raw command. The command is normalized here; callers
// pass it exactly as received.
func (in *Interpreter) Interpret(command string) Outcome {
	if strings.TrimSpace(command) == "" {
		return Failure(ReasonEmptyCommand)
	}

	normalized := Normalize(command)

	phrase, ok := matchShapePhrase(normalized)
	if !ok {
		return Failure(ReasonBadFormat)
	}
	kind, ok := LookupPhrase(phrase)
	if !ok {
		return Failure(fmt.Sprintf("'%s' is not supported shape.", phrase))
	}

	clauses, ok := matchMeasurements(normalized)
	if !ok {
		return Failure(ReasonBadFormat)
	}

	values := make([]float64, len(clauses))
	for i, c := range clauses {
		v, ok := parseValue(c.value)
		if !ok {
			return Failure(fmt.Sprintf("Invalid measurement value for %s.", c.name))
		}
		values[i] = v
	}
	for i, c := range clauses {
		if values[i] <= 0 {
			return Failure(fmt.Sprintf("Value for %s must be positive.", c.name))
		}
	}

	// A repeated name keeps its first value.
	measurements := make(map[string]float64, len(clauses))
	for i, c := range clauses {
		if _, dup := measurements[c.name]; dup {
			continue
		}
		measurements[c.name] = values[i]
	}

	s, err := shape.New(kind, measurements)
	if err != nil {
		// Unreachable: the phrase table only holds valid kinds.
		return Failure(err.Error())
	}
	return Success(s)
}

// parseValue reads a decimal measurement. Hex floats and non-finite values
// are rejected.
func parseValue(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	digits := strings.ToLower(strings.TrimLeft(raw, "+-"))
	if strings.HasPrefix(digits, "0x") {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
