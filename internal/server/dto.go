package server

import (
	"context"
	"errors"

	"shapegen/internal/generator"
	"shapegen/internal/interpret"
	"shapegen/internal/shape"
)

// Error messages returned by POST /shape/parse.
const (
	MsgNullRequest     = "Request cannot be null."
	MsgEmptyCommand    = interpret.ReasonEmptyCommand
	MsgMalformedBody   = "Request body must be a JSON object with a 'command' string."
	MsgBodyTooLarge    = "Request body too large."
	MsgCalculation     = "An error occurred while calculating the shape."
	MsgUnexpected      = "An unexpected error occurred while parsing the shape."
	MsgRequestCanceled = "Request was cancelled."
)

// FailureMessage maps a Generate error to the message shown to users by
// every surface: the reason for bad input, a fixed message otherwise.
func FailureMessage(err error) string {
	switch {
	case generator.IsInputError(err):
		return err.Error()
	case errors.Is(err, generator.ErrSynthesis):
		return MsgCalculation
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return MsgRequestCanceled
	default:
		return MsgUnexpected
	}
}

// ParseRequest is the body of POST /shape/parse.
type ParseRequest struct {
	Command *string `json:"command"`
}

// ParseResponse is returned by POST /shape/parse for every outcome.
// Shape is null on failure and ErrorMessage is null on success.
type ParseResponse struct {
	Success      bool         `json:"success"`
	Shape        *shape.Shape `json:"shape"`
	ErrorMessage *string      `json:"errorMessage"`
}

func okResponse(s shape.Shape) ParseResponse {
	return ParseResponse{Success: true, Shape: &s}
}

func errResponse(msg string) ParseResponse {
	return ParseResponse{ErrorMessage: &msg}
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// ShapeInfo describes one supported archetype for GET /shapes.
type ShapeInfo struct {
	Type         string   `json:"type"`
	Phrase       string   `json:"phrase"`
	Measurements []string `json:"measurements"`
	CentreBased  bool     `json:"centreBased"`
	Vertices     int      `json:"vertices"`
	Example      string   `json:"example"`
}

// Catalogue lists every supported archetype in Kind order.
func Catalogue() []ShapeInfo {
	kinds := shape.Kinds()
	out := make([]ShapeInfo, 0, len(kinds))
	for _, k := range kinds {
		phrase, _ := interpret.PhraseFor(k)
		out = append(out, ShapeInfo{
			Type:         k.String(),
			Phrase:       phrase,
			Measurements: k.RequiredMeasurements(),
			CentreBased:  k.CentreBased(),
			Vertices:     k.Sides(),
			Example:      interpret.Example(k),
		})
	}
	return out
}
