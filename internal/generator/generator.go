// Package generator runs the interpret -> synthesize pipeline for one command
// and is the single entry point shared by the CLI, the TUI and the HTTP server.
package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shapegen/internal/geometry"
	"shapegen/internal/interpret"
	"shapegen/internal/logging"
	"shapegen/internal/shape"
)

// ErrSynthesis wraps any error returned by the coordinate synthesizer.
// Transports treat it as an internal failure rather than bad input.
var ErrSynthesis = errors.New("an error occurred while calculating the shape")

// DefaultSlowThreshold is the duration above which a generation is logged as slow.
const DefaultSlowThreshold = 50 * time.Millisecond

// Generator turns commands into fully synthesized shapes.
type Generator struct {
	interp        *interpret.Interpreter
	synthesize    func(shape.Shape) (shape.Shape, error)
	source        string
	slowThreshold time.Duration
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource tags audit events with the calling surface (cli, api, tui).
func WithSource(source string) Option {
	return func(g *Generator) { g.source = source }
}

// WithSlowThreshold overrides DefaultSlowThreshold.
func WithSlowThreshold(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.slowThreshold = d
		}
	}
}

// New returns a Generator using the package-level interpreter grammar.
func New(opts ...Option) *Generator {
	g := &Generator{
		interp:        interpret.New(),
		synthesize:    geometry.Synthesize,
		slowThreshold: DefaultSlowThreshold,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate interprets command and synthesizes its coordinates.
//
// Errors are one of:
//   - *interpret.InputError (errors.Is ErrInvalidCommand) for bad input;
//   - an error wrapping ErrSynthesis and the geometry error, including
//     geometry.ErrNonFinite when a formula overflows;
//   - ctx.Err() if the context ended before a stage started.
func (g *Generator) Generate(ctx context.Context, command string) (shape.Shape, error) {
	start := time.Now()
	s, err := g.generate(ctx, command)

	kind := ""
	if !s.IsZero() {
		kind = s.Type()
	}
	logging.AuditFor(g.source, RequestIDFrom(ctx)).Generation(command, kind, time.Since(start), err, IsInputError(err))
	return s, err
}

func (g *Generator) generate(ctx context.Context, command string) (shape.Shape, error) {
	log := logging.WithRequestID(logging.CategoryInterpreter, RequestIDFrom(ctx))

	if err := ctx.Err(); err != nil {
		return shape.Shape{}, err
	}

	timer := logging.StartTimer(logging.CategoryInterpreter, "interpret")
	outcome := g.interp.Interpret(command)
	timer.Stop()

	if !outcome.OK() {
		log.Debug("rejected %q: %s", command, outcome.Reason())
		return shape.Shape{}, outcome.Err()
	}
	parsed := outcome.Shape()
	logging.InterpreterDebug("parsed %q as %s %v", command, parsed.Type(), parsed.Measurements())

	if err := ctx.Err(); err != nil {
		return shape.Shape{}, err
	}

	timer = logging.StartTimer(logging.CategoryGeometry, "synthesize "+parsed.Type())
	out, err := g.synthesize(parsed)
	timer.StopWithThreshold(g.slowThreshold)
	if err == nil {
		err = geometry.CheckFinite(out)
	}
	if err != nil {
		logging.GeometryError("synthesis failed for %s: %v", parsed.Type(), err)
		return shape.Shape{}, fmt.Errorf("%w: %w", ErrSynthesis, err)
	}
	logging.GeometryDebug("synthesized %s: %d points", out.Type(), len(out.Points()))
	return out, nil
}

// IsInputError reports whether err was caused by the caller's command text.
func IsInputError(err error) bool {
	return errors.Is(err, interpret.ErrInvalidCommand)
}

type requestIDKey struct{}

// WithRequestID returns a context carrying a request correlation ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request ID stored by WithRequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
