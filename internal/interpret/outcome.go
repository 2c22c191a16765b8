package interpret

import (
	"errors"
	"strings"

	"shapegen/internal/shape"
)

// ErrInvalidCommand is matched by every error produced from a failed Outcome.
var ErrInvalidCommand = errors.New("invalid shape command")

// InputError carries the user-facing reason a command was rejected.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return e.Reason }

// Is lets errors.Is(err, ErrInvalidCommand) match any InputError.
func (e *InputError) Is(target error) bool { return target == ErrInvalidCommand }

// Outcome is the result of interpreting a command: either a shape carrying
// kind and measurements, or a non-empty failure reason.
type Outcome struct {
	shape  shape.Shape
	reason string
	ok     bool
}

// Success wraps a parsed shape. Passing the zero Shape is a programming error.
func Success(s shape.Shape) Outcome {
	if s.IsZero() {
		panic("interpret: Success called with zero Shape")
	}
	return Outcome{shape: s, ok: true}
}

// Failure wraps a rejection reason. A blank reason is a programming error.
func Failure(reason string) Outcome {
	if strings.TrimSpace(reason) == "" {
		panic("interpret: error message cannot be null or empty")
	}
	return Outcome{reason: reason}
}

// OK reports whether the command parsed.
func (o Outcome) OK() bool { return o.ok }

// Shape returns the parsed shape; the zero Shape for a failure.
func (o Outcome) Shape() shape.Shape { return o.shape }

// Reason returns the failure reason; empty for a success.
func (o Outcome) Reason() string { return o.reason }

// Err returns nil for a success and an *InputError for a failure.
func (o Outcome) Err() error {
	if o.ok {
		return nil
	}
	return &InputError{Reason: o.reason}
}
